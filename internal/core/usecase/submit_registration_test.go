package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-dashboard-service/internal/contextkeys"
	"housing-dashboard-service/internal/core/domain"
)

// fakeRegistrationBackend фиксирует вызовы и токен, с которым они пришли.
type fakeRegistrationBackend struct {
	createCalls int
	lastCreated *domain.Registration
	lastToken   string
	createErr   error
	deleteCalls int
	deletedID   string
}

func (f *fakeRegistrationBackend) GetAll(ctx context.Context) ([]domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationBackend) GetByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	return nil, nil
}

func (f *fakeRegistrationBackend) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	f.createCalls++
	f.lastCreated = reg
	f.lastToken = contextkeys.AuthTokenFromContext(ctx)
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *reg
	created.ID = "reg-created"
	return &created, nil
}

func (f *fakeRegistrationBackend) Update(ctx context.Context, id string, reg *domain.Registration) (*domain.Registration, error) {
	updated := *reg
	updated.ID = id
	return &updated, nil
}

func (f *fakeRegistrationBackend) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	f.deletedID = id
	return nil
}

type fakeSessionStore struct {
	tokens   map[string]string
	profiles map[string]*domain.UserProfile
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		tokens:   make(map[string]string),
		profiles: make(map[string]*domain.UserProfile),
	}
}

func (f *fakeSessionStore) SaveSession(ctx context.Context, userID, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeSessionStore) Token(ctx context.Context, userID string) (string, error) {
	return f.tokens[userID], nil
}

func (f *fakeSessionStore) IsAuthenticated(ctx context.Context, userID string) (bool, error) {
	return f.tokens[userID] != "", nil
}

func (f *fakeSessionStore) SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) error {
	f.profiles[userID] = profile
	return nil
}

func (f *fakeSessionStore) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (f *fakeSessionStore) Clear(ctx context.Context, userID string) error {
	delete(f.tokens, userID)
	delete(f.profiles, userID)
	return nil
}

type fakeUploader struct {
	uploaded []string // имена файлов в порядке загрузки
	err      error
}

func (f *fakeUploader) Upload(ctx context.Context, category, fileName string, content []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, fileName)
	return "https://storage.example.com/" + category + "/" + fileName, nil
}

func validRegistrationForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		PropertyType: domain.PropertyTypeHouse,
		Address:      "12 Main Street",
		Price:        250000,
		Bedrooms:     3,
		Bathrooms:    2,
		Area:         120,
		Owner:        domain.OwnerContact{Name: "Anna Kovalenko", Phone: "+380501112233"},
	}
}

func TestSubmitRegistration_Success(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"
	uploader := &fakeUploader{}

	uc := NewSubmitRegistrationUseCase(backend, sessions, uploader)

	form := validRegistrationForm()
	form.PendingPhotos = []domain.PendingPhoto{
		{FileName: "front.jpg", Content: []byte("jpeg-1")},
		{FileName: "back.jpg", Content: []byte("jpeg-2")},
	}

	created, err := uc.Execute(context.Background(), "user-1", form)
	require.NoError(t, err)

	assert.Equal(t, "reg-created", created.ID)
	assert.Equal(t, domain.RegistrationStatusPending, created.Status)
	assert.Equal(t, "token-abc", backend.lastToken, "backend call must carry the session token")

	// Загрузка идет в порядке выбора, имена файлов становятся именами фото
	require.Equal(t, []string{"front.jpg", "back.jpg"}, uploader.uploaded)
	require.Len(t, backend.lastCreated.Photos, 2)
	assert.Equal(t, "front.jpg", backend.lastCreated.Photos[0].Name)
	assert.Contains(t, backend.lastCreated.Photos[0].URL, "housing_registrations/")
}

func TestSubmitRegistration_ValidationFailsBeforeAnyNetworkCall(t *testing.T) {
	backend := &fakeRegistrationBackend{createErr: errors.New("must not be called")}
	sessions := newFakeSessionStore()
	uploader := &fakeUploader{err: errors.New("must not be called")}

	uc := NewSubmitRegistrationUseCase(backend, sessions, uploader)

	form := validRegistrationForm()
	form.Price = 0
	form.Owner.Name = ""
	form.Owner.Phone = ""

	_, err := uc.Execute(context.Background(), "user-1", form)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "price")
	assert.Contains(t, validation.Fields, "ownerName")
	assert.Contains(t, validation.Fields, "ownerPhone")
	assert.Zero(t, backend.createCalls)
	assert.Empty(t, uploader.uploaded)
}

func TestSubmitRegistration_RejectsAmenityOutsideVocabulary(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"
	uploader := &fakeUploader{}

	uc := NewSubmitRegistrationUseCase(backend, sessions, uploader)

	form := validRegistrationForm()
	form.Amenities = []string{"garden", "helipad"}

	_, err := uc.Execute(context.Background(), "user-1", form)

	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "amenities")
	assert.Zero(t, backend.createCalls)
}

func TestSubmitRegistration_MissingSessionToken(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore() // токена нет
	uploader := &fakeUploader{}

	uc := NewSubmitRegistrationUseCase(backend, sessions, uploader)

	_, err := uc.Execute(context.Background(), "user-1", validRegistrationForm())

	require.ErrorIs(t, err, domain.ErrSessionMissing)
	assert.Zero(t, backend.createCalls)
}

func TestSubmitRegistration_UploadFailureAbortsCreate(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"
	uploader := &fakeUploader{err: errors.New("storage unavailable")}

	uc := NewSubmitRegistrationUseCase(backend, sessions, uploader)

	form := validRegistrationForm()
	form.PendingPhotos = []domain.PendingPhoto{{FileName: "front.jpg", Content: []byte("x")}}

	_, err := uc.Execute(context.Background(), "user-1", form)

	require.Error(t, err)
	assert.Zero(t, backend.createCalls, "create must not run after a failed upload")
}

func TestUpdateRegistration_KeepsExistingPhotos(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"
	uploader := &fakeUploader{}

	uc := NewUpdateRegistrationUseCase(backend, sessions, uploader)

	form := validRegistrationForm()
	form.Photos = []domain.Photo{{URL: "https://cdn.example.com/old.jpg", Name: "Старое фото"}}
	form.PendingPhotos = []domain.PendingPhoto{{FileName: "new.jpg", Content: []byte("x")}}

	updated, err := uc.Execute(context.Background(), "user-1", "reg-7", form)
	require.NoError(t, err)

	assert.Equal(t, "reg-7", updated.ID)
	require.Len(t, updated.Photos, 2)
	assert.Equal(t, "Старое фото", updated.Photos[0].Name, "existing photo names survive the edit")
	assert.Equal(t, "new.jpg", updated.Photos[1].Name)
}

func TestDeleteRegistration_RequiresConfirmation(t *testing.T) {
	backend := &fakeRegistrationBackend{}
	sessions := newFakeSessionStore()
	sessions.tokens["user-1"] = "token-abc"

	uc := NewDeleteRegistrationUseCase(backend, sessions)

	err := uc.Execute(context.Background(), "user-1", "reg-7", false)
	require.ErrorIs(t, err, domain.ErrConfirmationMissing)
	assert.Zero(t, backend.deleteCalls)

	err = uc.Execute(context.Background(), "user-1", "reg-7", true)
	require.NoError(t, err)
	assert.Equal(t, "reg-7", backend.deletedID)
}
