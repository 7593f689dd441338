package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
)

type fakeSaleBackend struct {
	createCalls   int
	lastSale      *domain.Sale
	lastToken     string
	transferCalls int
	lastTransfer  *domain.Transfer
}

func (f *fakeSaleBackend) GetAll(ctx context.Context) ([]domain.Sale, error) { return nil, nil }

func (f *fakeSaleBackend) GetByUser(ctx context.Context, userID string) ([]domain.Sale, error) {
	return nil, nil
}

func (f *fakeSaleBackend) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	f.createCalls++
	f.lastSale = sale
	f.lastToken = contextkeys.AuthTokenFromContext(ctx)
	created := *sale
	created.ID = "sale-created"
	return &created, nil
}

func (f *fakeSaleBackend) CreateTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Transfer, error) {
	f.transferCalls++
	f.lastTransfer = transfer
	created := *transfer
	created.ID = "transfer-created"
	return &created, nil
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func validSaleForm() domain.SaleForm {
	return domain.SaleForm{
		RegistrationID: "reg-1",
		Seller:         domain.ContactTriple{Name: "Seller One"},
		Buyer:          domain.ContactTriple{Name: "Buyer One"},
		ListedPrice:    300000,
		SoldPrice:      280000,
		DateSold:       testNow.AddDate(0, -1, 0),
	}
}

func newRecordSaleForTest(backend *fakeSaleBackend, sessions *fakeSessionStore) *RecordSaleUseCase {
	uc := NewRecordSaleUseCase(backend, sessions, &fakeUploader{})
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestRecordSale_Success(t *testing.T) {
	backend := &fakeSaleBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"

	uc := newRecordSaleForTest(backend, sessions)

	created, err := uc.Execute(context.Background(), "user-1", validSaleForm())
	require.NoError(t, err)

	assert.Equal(t, "sale-created", created.ID)
	assert.Equal(t, "token-abc", backend.lastToken)
}

func TestRecordSale_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SaleForm)
		field  string
	}{
		{"zero sold price", func(f *domain.SaleForm) { f.SoldPrice = 0 }, "soldPrice"},
		{"negative listed price", func(f *domain.SaleForm) { f.ListedPrice = -5 }, "listedPrice"},
		{"future date sold", func(f *domain.SaleForm) { f.DateSold = testNow.AddDate(0, 0, 1) }, "dateSold"},
		{"missing date sold", func(f *domain.SaleForm) { f.DateSold = time.Time{} }, "dateSold"},
		{"missing buyer", func(f *domain.SaleForm) { f.Buyer.Name = "" }, "buyerName"},
		{"missing registration", func(f *domain.SaleForm) { f.RegistrationID = "" }, "registrationId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeSaleBackend{}
			sessions := newFakeSessionStore()
			sessions.tokens["user-1"] = "token-abc"
			uc := newRecordSaleForTest(backend, sessions)

			form := validSaleForm()
			tt.mutate(&form)

			_, err := uc.Execute(context.Background(), "user-1", form)

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Contains(t, validation.Fields, tt.field)
			assert.Zero(t, backend.createCalls, "validation failure must not reach the backend")
		})
	}
}

func TestRecordSale_MissingSession(t *testing.T) {
	backend := &fakeSaleBackend{}
	uc := newRecordSaleForTest(backend, newFakeSessionStore())

	_, err := uc.Execute(context.Background(), "user-1", validSaleForm())

	require.ErrorIs(t, err, domain.ErrSessionMissing)
	assert.Zero(t, backend.createCalls)
}

func validTransferForm() domain.TransferForm {
	return domain.TransferForm{
		RegistrationID: "reg-1",
		CurrentOwner:   domain.ContactTriple{Name: "Old Owner"},
		NewOwner:       domain.ContactTriple{Name: "New Owner"},
	}
}

func TestTransferOwnership_Success(t *testing.T) {
	backend := &fakeSaleBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"

	uc := NewTransferOwnershipUseCase(backend, sessions)
	uc.now = func() time.Time { return testNow }

	created, err := uc.Execute(context.Background(), "user-1", validTransferForm())
	require.NoError(t, err)

	assert.Equal(t, "transfer-created", created.ID)
	assert.Equal(t, 1, backend.transferCalls)
}

func TestTransferOwnership_SalePartIsAllOrNothing(t *testing.T) {
	backend := &fakeSaleBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"

	uc := NewTransferOwnershipUseCase(backend, sessions)
	uc.now = func() time.Time { return testNow }

	listed := 300000.0
	form := validTransferForm()
	form.ListedPrice = &listed // цена без даты и второй цены

	_, err := uc.Execute(context.Background(), "user-1", form)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "salePart")
	assert.Zero(t, backend.transferCalls)
}

func TestTransferOwnership_SalePartValidatedLikeASale(t *testing.T) {
	backend := &fakeSaleBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"

	uc := NewTransferOwnershipUseCase(backend, sessions)
	uc.now = func() time.Time { return testNow }

	listed, sold := 300000.0, 0.0
	dateSold := testNow.AddDate(0, -2, 0)
	form := validTransferForm()
	form.ListedPrice = &listed
	form.SoldPrice = &sold
	form.DateSold = &dateSold

	_, err := uc.Execute(context.Background(), "user-1", form)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "soldPrice")
}

func TestSubmitGate_RejectsConcurrentDuplicates(t *testing.T) {
	gate := newSubmitGate()

	require.NoError(t, gate.begin("sale:user-1"))
	assert.ErrorIs(t, gate.begin("sale:user-1"), domain.ErrSubmissionInFlight)

	// Другой ключ не блокируется
	require.NoError(t, gate.begin("sale:user-2"))

	gate.end("sale:user-1")
	assert.NoError(t, gate.begin("sale:user-1"), "the key is free again after completion")
}

func TestListSales_ReturnsFetchedData(t *testing.T) {
	backend := &saleListBackend{sales: []domain.Sale{
		{ID: "s1", RegistrationID: "reg-1", SoldPrice: 100000},
		{ID: "s2", RegistrationID: "reg-2", SoldPrice: 200000},
	}}

	uc := NewListSalesUseCase(backend)

	sales, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, sales, 2, "fetched sales must actually be returned")
	assert.Equal(t, "s1", sales[0].ID)
}

type saleListBackend struct {
	fakeSaleBackend
	sales []domain.Sale
	err   error
}

func (f *saleListBackend) GetAll(ctx context.Context) ([]domain.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sales, nil
}

func TestListSales_PropagatesBackendError(t *testing.T) {
	backendErr := errors.New("boom")
	uc := NewListSalesUseCase(&saleListBackend{err: backendErr})

	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, backendErr)
}
