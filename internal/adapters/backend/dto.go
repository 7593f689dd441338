package backend_client

import (
	"encoding/json"
	"time"

	"housing-dashboard-service/internal/core/domain"
)

// DTO удаленного backend. Имена полей - серверные (camelCase),
// ядро про них не знает: маппинг изолирует домен от деталей чужого API.

type propertyDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Price       float64  `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Type        string   `json:"propertyType"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Region      string   `json:"region"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d propertyDTO) toDomain() domain.Property {
	p := domain.Property{
		ID:          d.ID,
		Title:       d.Title,
		Address:     d.Address,
		Price:       d.Price,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		Area:        d.Area,
		Type:        d.Type,
		Status:      d.Status,
		Images:      d.Images,
		Rating:      d.Rating,
		Description: d.Description,
		Region:      d.Region,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	// Инвариант координат: либо обе присутствуют, либо пары нет.
	// Объект с половиной пары считается объектом без координат.
	if d.Latitude != nil && d.Longitude != nil {
		p.Coordinates = &domain.Coordinates{Latitude: *d.Latitude, Longitude: *d.Longitude}
	}
	return p
}

type registrationDTO struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	PropertyType string   `json:"propertyType"`
	Address      string   `json:"address"`
	Region       string   `json:"region"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         float64  `json:"area"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	OwnerEmail string `json:"ownerEmail,omitempty"`

	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`

	// Фото приходят полиморфно: строки или объекты. Нормализуем при маппинге.
	Photos []json.RawMessage `json:"photos"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d registrationDTO) toDomain() (domain.Registration, error) {
	photos, err := domain.NormalizePhotos(d.Photos)
	if err != nil {
		return domain.Registration{}, err
	}

	reg := domain.Registration{
		ID:     d.ID,
		UserID: d.UserID,

		PropertyType: d.PropertyType,
		Address:      d.Address,
		Region:       d.Region,
		Price:        d.Price,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		Area:         d.Area,

		Owner: domain.OwnerContact{
			Name:  d.OwnerName,
			Phone: d.OwnerPhone,
			Email: d.OwnerEmail,
		},
		Amenities:   d.Amenities,
		Description: d.Description,
		Photos:      photos,

		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Latitude != nil && d.Longitude != nil {
		reg.Coordinates = &domain.Coordinates{Latitude: *d.Latitude, Longitude: *d.Longitude}
	}
	return reg, nil
}

// registrationPayload - тело create/update запроса. Фото отправляем
// только в каноническом объектном виде.
type registrationPayload struct {
	UserID string `json:"userId"`

	PropertyType string   `json:"propertyType"`
	Address      string   `json:"address"`
	Region       string   `json:"region,omitempty"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         float64  `json:"area"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`

	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	OwnerEmail string `json:"ownerEmail,omitempty"`

	Amenities   []string       `json:"amenities"`
	Description string         `json:"description,omitempty"`
	Photos      []domain.Photo `json:"photos"`
}

func registrationPayloadFromDomain(reg *domain.Registration) registrationPayload {
	p := registrationPayload{
		UserID:       reg.UserID,
		PropertyType: reg.PropertyType,
		Address:      reg.Address,
		Region:       reg.Region,
		Price:        reg.Price,
		Bedrooms:     reg.Bedrooms,
		Bathrooms:    reg.Bathrooms,
		Area:         reg.Area,
		OwnerName:    reg.Owner.Name,
		OwnerPhone:   reg.Owner.Phone,
		OwnerEmail:   reg.Owner.Email,
		Amenities:    reg.Amenities,
		Description:  reg.Description,
		Photos:       reg.Photos,
	}
	if reg.Coordinates != nil {
		p.Latitude = &reg.Coordinates.Latitude
		p.Longitude = &reg.Coordinates.Longitude
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Photos == nil {
		p.Photos = []domain.Photo{}
	}
	return p
}

type saleDTO struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registrationId"`

	SellerName  string `json:"sellerName"`
	SellerPhone string `json:"sellerPhone"`
	SellerEmail string `json:"sellerEmail,omitempty"`
	BuyerName   string `json:"buyerName"`
	BuyerPhone  string `json:"buyerPhone"`
	BuyerEmail  string `json:"buyerEmail,omitempty"`

	ListedPrice float64   `json:"listedPrice"`
	SoldPrice   float64   `json:"soldPrice"`
	DateSold    time.Time `json:"dateSold"`

	Photos []json.RawMessage `json:"photos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d saleDTO) toDomain() (domain.Sale, error) {
	photos, err := domain.NormalizePhotos(d.Photos)
	if err != nil {
		return domain.Sale{}, err
	}
	return domain.Sale{
		ID:             d.ID,
		RegistrationID: d.RegistrationID,
		Seller:         domain.ContactTriple{Name: d.SellerName, Phone: d.SellerPhone, Email: d.SellerEmail},
		Buyer:          domain.ContactTriple{Name: d.BuyerName, Phone: d.BuyerPhone, Email: d.BuyerEmail},
		ListedPrice:    d.ListedPrice,
		SoldPrice:      d.SoldPrice,
		DateSold:       d.DateSold,
		Photos:         photos,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

type salePayload struct {
	RegistrationID string `json:"registrationId"`

	SellerName  string `json:"sellerName"`
	SellerPhone string `json:"sellerPhone"`
	SellerEmail string `json:"sellerEmail,omitempty"`
	BuyerName   string `json:"buyerName"`
	BuyerPhone  string `json:"buyerPhone"`
	BuyerEmail  string `json:"buyerEmail,omitempty"`

	ListedPrice float64        `json:"listedPrice"`
	SoldPrice   float64        `json:"soldPrice"`
	DateSold    string         `json:"dateSold"` // формат YYYY-MM-DD
	Photos      []domain.Photo `json:"photos"`
}

func salePayloadFromDomain(sale *domain.Sale) salePayload {
	photos := sale.Photos
	if photos == nil {
		photos = []domain.Photo{}
	}
	return salePayload{
		RegistrationID: sale.RegistrationID,
		SellerName:     sale.Seller.Name,
		SellerPhone:    sale.Seller.Phone,
		SellerEmail:    sale.Seller.Email,
		BuyerName:      sale.Buyer.Name,
		BuyerPhone:     sale.Buyer.Phone,
		BuyerEmail:     sale.Buyer.Email,
		ListedPrice:    sale.ListedPrice,
		SoldPrice:      sale.SoldPrice,
		DateSold:       sale.DateSold.Format("2006-01-02"),
		Photos:         photos,
	}
}

type transferDTO struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registrationId"`

	CurrentOwnerName  string `json:"currentOwnerName"`
	CurrentOwnerPhone string `json:"currentOwnerPhone"`
	CurrentOwnerEmail string `json:"currentOwnerEmail,omitempty"`
	NewOwnerName      string `json:"newOwnerName"`
	NewOwnerPhone     string `json:"newOwnerPhone"`
	NewOwnerEmail     string `json:"newOwnerEmail,omitempty"`

	ListedPrice *float64 `json:"listedPrice,omitempty"`
	SoldPrice   *float64 `json:"soldPrice,omitempty"`
	DateSold    *string  `json:"dateSold,omitempty"`

	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d transferDTO) toDomain() (domain.Transfer, error) {
	tr := domain.Transfer{
		ID:             d.ID,
		RegistrationID: d.RegistrationID,
		CurrentOwner:   domain.ContactTriple{Name: d.CurrentOwnerName, Phone: d.CurrentOwnerPhone, Email: d.CurrentOwnerEmail},
		NewOwner:       domain.ContactTriple{Name: d.NewOwnerName, Phone: d.NewOwnerPhone, Email: d.NewOwnerEmail},
		ListedPrice:    d.ListedPrice,
		SoldPrice:      d.SoldPrice,
		Reason:         d.Reason,
		CreatedAt:      d.CreatedAt,
	}
	if d.DateSold != nil {
		parsed, err := time.Parse("2006-01-02", *d.DateSold)
		if err != nil {
			return domain.Transfer{}, err
		}
		tr.DateSold = &parsed
	}
	return tr, nil
}

// transferPayload - тело create-запроса. id и createdAt назначает backend,
// в исходящем payload'е их нет.
type transferPayload struct {
	RegistrationID string `json:"registrationId"`

	CurrentOwnerName  string `json:"currentOwnerName"`
	CurrentOwnerPhone string `json:"currentOwnerPhone"`
	CurrentOwnerEmail string `json:"currentOwnerEmail,omitempty"`
	NewOwnerName      string `json:"newOwnerName"`
	NewOwnerPhone     string `json:"newOwnerPhone"`
	NewOwnerEmail     string `json:"newOwnerEmail,omitempty"`

	ListedPrice *float64 `json:"listedPrice,omitempty"`
	SoldPrice   *float64 `json:"soldPrice,omitempty"`
	DateSold    *string  `json:"dateSold,omitempty"`

	Reason string `json:"reason,omitempty"`
}

func transferPayloadFromDomain(tr *domain.Transfer) transferPayload {
	d := transferPayload{
		RegistrationID:    tr.RegistrationID,
		CurrentOwnerName:  tr.CurrentOwner.Name,
		CurrentOwnerPhone: tr.CurrentOwner.Phone,
		CurrentOwnerEmail: tr.CurrentOwner.Email,
		NewOwnerName:      tr.NewOwner.Name,
		NewOwnerPhone:     tr.NewOwner.Phone,
		NewOwnerEmail:     tr.NewOwner.Email,
		ListedPrice:       tr.ListedPrice,
		SoldPrice:         tr.SoldPrice,
		Reason:            tr.Reason,
	}
	if tr.DateSold != nil {
		formatted := tr.DateSold.Format("2006-01-02")
		d.DateSold = &formatted
	}
	return d
}

type reportDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	SizeLabel   string `json:"size"`
	RecordCount int    `json:"recordCount"`

	Document struct {
		Name     string `json:"name"`
		URL      string `json:"url"`
		FileType string `json:"type"`
	} `json:"document"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d reportDTO) toDomain() domain.Report {
	return domain.Report{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Author:      d.Author,
		SizeLabel:   d.SizeLabel,
		RecordCount: d.RecordCount,
		Document: domain.ReportDocument{
			Name:     d.Document.Name,
			URL:      d.Document.URL,
			FileType: d.Document.FileType,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type profileDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	RegisteredAt       time.Time `json:"registeredAt"`
	VerificationStatus string    `json:"verificationStatus"`
}

func (d profileDTO) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:                 d.ID,
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		RegisteredAt:       d.RegisteredAt,
		VerificationStatus: d.VerificationStatus,
	}
}

func profilePayloadFromDomain(p *domain.UserProfile) profileDTO {
	return profileDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		RegisteredAt:       p.RegisteredAt,
		VerificationStatus: p.VerificationStatus,
	}
}
