package rest

import (
	"time"

	"housing-dashboard-service/internal/core/domain"
)

// DTO запросов и ответов нашего API. Форматы полей совпадают с тем,
// что ожидает frontend дашборда.

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PhotoDTO struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// PendingPhotoDTO - локальное вложение. Content передается base64-строкой,
// стандартный json-кодек раскладывает ее в []byte сам.
type PendingPhotoDTO struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"content"`
}

type PropertyResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Address     string          `json:"address"`
	Region      string          `json:"region,omitempty"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	Price       float64         `json:"price"`
	PriceLabel  string          `json:"priceLabel"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Area        float64         `json:"area"`
	Type        string          `json:"propertyType"`
	Status      string          `json:"status"`
	Images      []string        `json:"images"`
	Rating      float64         `json:"rating,omitempty"`
	Description string          `json:"description,omitempty"`
}

func propertyToResponse(p *domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Address:     p.Address,
		Region:      p.Region,
		Price:       p.Price,
		PriceLabel:  domain.FormatPrice(p.Price),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Type:        p.Type,
		Status:      p.Status,
		Images:      p.Images,
		Rating:      p.Rating,
		Description: p.Description,
	}
	if p.HasCoordinates() {
		resp.Coordinates = &CoordinatesDTO{
			Latitude:  p.Coordinates.Latitude,
			Longitude: p.Coordinates.Longitude,
		}
	}
	return resp
}

type RegistrationRequest struct {
	PropertyType string          `json:"propertyType"`
	Address      string          `json:"address"`
	Region       string          `json:"region"`
	Price        float64         `json:"price"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	Area         float64         `json:"area"`
	Coordinates  *CoordinatesDTO `json:"coordinates"`

	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	OwnerEmail string `json:"ownerEmail"`

	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`

	Photos        []PhotoDTO        `json:"photos"`
	PendingPhotos []PendingPhotoDTO `json:"pendingPhotos"`
}

func (req *RegistrationRequest) toForm() domain.RegistrationForm {
	form := domain.RegistrationForm{
		PropertyType: req.PropertyType,
		Address:      req.Address,
		Region:       req.Region,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		Owner: domain.OwnerContact{
			Name:  req.OwnerName,
			Phone: req.OwnerPhone,
			Email: req.OwnerEmail,
		},
		Amenities:   req.Amenities,
		Description: req.Description,
	}
	if req.Coordinates != nil {
		form.Coordinates = &domain.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}
	for _, photo := range req.Photos {
		form.Photos = append(form.Photos, domain.Photo{URL: photo.URL, Name: photo.Name})
	}
	for _, pending := range req.PendingPhotos {
		form.PendingPhotos = append(form.PendingPhotos, domain.PendingPhoto{
			FileName: pending.FileName,
			Content:  pending.Content,
		})
	}
	return form
}

type RegistrationResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	PropertyType string          `json:"propertyType"`
	Address      string          `json:"address"`
	Region       string          `json:"region,omitempty"`
	Price        float64         `json:"price"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    int             `json:"bathrooms"`
	Area         float64         `json:"area"`
	Coordinates  *CoordinatesDTO `json:"coordinates,omitempty"`
	OwnerName    string          `json:"ownerName"`
	OwnerPhone   string          `json:"ownerPhone,omitempty"`
	OwnerEmail   string          `json:"ownerEmail,omitempty"`
	Amenities    []string        `json:"amenities"`
	Description  string          `json:"description,omitempty"`
	Photos       []PhotoDTO      `json:"photos"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func registrationToResponse(reg *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           reg.ID,
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
		Photos:       make([]PhotoDTO, 0, len(reg.Photos)),
		Status:       reg.Status,
		CreatedAt:    reg.CreatedAt,
		UpdatedAt:    reg.UpdatedAt,
	}
	if reg.Coordinates != nil {
		resp.Coordinates = &CoordinatesDTO{
			Latitude:  reg.Coordinates.Latitude,
			Longitude: reg.Coordinates.Longitude,
		}
	}
	for _, photo := range reg.Photos {
		resp.Photos = append(resp.Photos, PhotoDTO{URL: photo.URL, Name: photo.Name})
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	return resp
}

type ContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type SaleRequest struct {
	RegistrationID string            `json:"registrationId"`
	Seller         ContactDTO        `json:"seller"`
	Buyer          ContactDTO        `json:"buyer"`
	ListedPrice    float64           `json:"listedPrice"`
	SoldPrice      float64           `json:"soldPrice"`
	DateSold       string            `json:"dateSold"` // формат YYYY-MM-DD
	Photos         []PhotoDTO        `json:"photos"`
	PendingPhotos  []PendingPhotoDTO `json:"pendingPhotos"`
}

func (req *SaleRequest) toForm() (domain.SaleForm, error) {
	form := domain.SaleForm{
		RegistrationID: req.RegistrationID,
		Seller:         domain.ContactTriple(req.Seller),
		Buyer:          domain.ContactTriple(req.Buyer),
		ListedPrice:    req.ListedPrice,
		SoldPrice:      req.SoldPrice,
	}
	if req.DateSold != "" {
		dateSold, err := time.Parse("2006-01-02", req.DateSold)
		if err != nil {
			return form, err
		}
		form.DateSold = dateSold
	}
	for _, photo := range req.Photos {
		form.Photos = append(form.Photos, domain.Photo{URL: photo.URL, Name: photo.Name})
	}
	for _, pending := range req.PendingPhotos {
		form.PendingPhotos = append(form.PendingPhotos, domain.PendingPhoto{
			FileName: pending.FileName,
			Content:  pending.Content,
		})
	}
	return form, nil
}

type SaleResponse struct {
	ID             string     `json:"id"`
	RegistrationID string     `json:"registrationId"`
	Seller         ContactDTO `json:"seller"`
	Buyer          ContactDTO `json:"buyer"`
	ListedPrice    float64    `json:"listedPrice"`
	SoldPrice      float64    `json:"soldPrice"`
	DateSold       string     `json:"dateSold"`
	Photos         []PhotoDTO `json:"photos"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func saleToResponse(sale *domain.Sale) SaleResponse {
	resp := SaleResponse{
		ID:             sale.ID,
		RegistrationID: sale.RegistrationID,
		Seller:         ContactDTO(sale.Seller),
		Buyer:          ContactDTO(sale.Buyer),
		ListedPrice:    sale.ListedPrice,
		SoldPrice:      sale.SoldPrice,
		DateSold:       sale.DateSold.Format("2006-01-02"),
		Photos:         make([]PhotoDTO, 0, len(sale.Photos)),
		CreatedAt:      sale.CreatedAt,
	}
	for _, photo := range sale.Photos {
		resp.Photos = append(resp.Photos, PhotoDTO{URL: photo.URL, Name: photo.Name})
	}
	return resp
}

type TransferRequest struct {
	RegistrationID string     `json:"registrationId"`
	CurrentOwner   ContactDTO `json:"currentOwner"`
	NewOwner       ContactDTO `json:"newOwner"`
	ListedPrice    *float64   `json:"listedPrice"`
	SoldPrice      *float64   `json:"soldPrice"`
	DateSold       *string    `json:"dateSold"`
	Reason         string     `json:"reason"`
}

func (req *TransferRequest) toForm() (domain.TransferForm, error) {
	form := domain.TransferForm{
		RegistrationID: req.RegistrationID,
		CurrentOwner:   domain.ContactTriple(req.CurrentOwner),
		NewOwner:       domain.ContactTriple(req.NewOwner),
		ListedPrice:    req.ListedPrice,
		SoldPrice:      req.SoldPrice,
		Reason:         req.Reason,
	}
	if req.DateSold != nil && *req.DateSold != "" {
		dateSold, err := time.Parse("2006-01-02", *req.DateSold)
		if err != nil {
			return form, err
		}
		form.DateSold = &dateSold
	}
	return form, nil
}

type TransferResponse struct {
	ID             string     `json:"id"`
	RegistrationID string     `json:"registrationId"`
	CurrentOwner   ContactDTO `json:"currentOwner"`
	NewOwner       ContactDTO `json:"newOwner"`
	ListedPrice    *float64   `json:"listedPrice,omitempty"`
	SoldPrice      *float64   `json:"soldPrice,omitempty"`
	DateSold       *string    `json:"dateSold,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func transferToResponse(transfer *domain.Transfer) TransferResponse {
	resp := TransferResponse{
		ID:             transfer.ID,
		RegistrationID: transfer.RegistrationID,
		CurrentOwner:   ContactDTO(transfer.CurrentOwner),
		NewOwner:       ContactDTO(transfer.NewOwner),
		ListedPrice:    transfer.ListedPrice,
		SoldPrice:      transfer.SoldPrice,
		Reason:         transfer.Reason,
		CreatedAt:      transfer.CreatedAt,
	}
	if transfer.DateSold != nil {
		formatted := transfer.DateSold.Format("2006-01-02")
		resp.DateSold = &formatted
	}
	return resp
}

type ReportDocumentDTO struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	FileType string `json:"type"`
}

type ReportResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Author      string            `json:"author,omitempty"`
	SizeLabel   string            `json:"size,omitempty"`
	RecordCount int               `json:"recordCount"`
	Document    ReportDocumentDTO `json:"document"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func reportToResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          report.ID,
		Title:       report.Title,
		Description: report.Description,
		Category:    report.Category,
		Author:      report.Author,
		SizeLabel:   report.SizeLabel,
		RecordCount: report.RecordCount,
		Document: ReportDocumentDTO{
			Name:     report.Document.Name,
			URL:      report.Document.URL,
			FileType: report.Document.FileType,
		},
		CreatedAt: report.CreatedAt,
	}
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ProfileResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	RegisteredAt       time.Time `json:"registeredAt"`
	VerificationStatus string    `json:"verificationStatus"`
}

func profileToResponse(profile *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                 profile.ID,
		Name:               profile.Name,
		Email:              profile.Email,
		Phone:              profile.Phone,
		RegisteredAt:       profile.RegisteredAt,
		VerificationStatus: profile.VerificationStatus,
	}
}

// SessionRequest - тело POST /session: токен, полученный при логине.
type SessionRequest struct {
	Token   string           `json:"token"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

type MarkerClusterResponse struct {
	Geohash   string         `json:"geohash"`
	Count     int            `json:"count"`
	Center    CoordinatesDTO `json:"center"`
	MarkerIDs []string       `json:"markerIds"`
}
