package domain

import (
	"time"
)

// Статусы workflow заявки на регистрацию жилья.
// Переходы Approved/Rejected/NeedsDocuments выполняет внешний актор (админка),
// на нашей стороне они не моделируются.
const (
	RegistrationStatusPending        = "Pending"
	RegistrationStatusApproved       = "Approved"
	RegistrationStatusRejected       = "Rejected"
	RegistrationStatusNeedsDocuments = "Needs Documents"
)

// AmenityVocabulary - фиксированный словарь удобств для мультиселекта.
var AmenityVocabulary = []string{
	"parking",
	"garden",
	"pool",
	"garage",
	"balcony",
	"security",
	"furnished",
	"air_conditioning",
}

// KnownAmenity проверяет значение против словаря.
func KnownAmenity(amenity string) bool {
	for _, known := range AmenityVocabulary {
		if known == amenity {
			return true
		}
	}
	return false
}

// OwnerContact - контактная тройка владельца. Email опционален.
type OwnerContact struct {
	Name  string
	Phone string
	Email string
}

// Registration - заявка пользователя на регистрацию объекта жилья.
type Registration struct {
	ID     string
	UserID string

	PropertyType string
	Address      string
	Region       string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	Area         float64
	Coordinates  *Coordinates

	Owner       OwnerContact
	Amenities   []string
	Description string
	Photos      []Photo

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegistrationForm - состояние формы регистрации до отправки.
// Photos - уже загруженные (например, при редактировании существующей записи),
// PendingPhotos - локальные вложения, которые еще предстоит залить в хранилище.
type RegistrationForm struct {
	PropertyType string
	Address      string
	Region       string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	Area         float64
	Coordinates  *Coordinates

	Owner       OwnerContact
	Amenities   []string
	Description string

	Photos        []Photo
	PendingPhotos []PendingPhoto
}

// ToggleAmenity - мультиселект: повторный выбор снимает отметку.
func (f *RegistrationForm) ToggleAmenity(amenity string) {
	for i, a := range f.Amenities {
		if a == amenity {
			f.Amenities = append(f.Amenities[:i], f.Amenities[i+1:]...)
			return
		}
	}
	f.Amenities = append(f.Amenities, amenity)
}

// FormFromRegistration заполняет форму из существующей записи.
// Режим редактирования обязан заполнить все поля, которые умеет
// выставлять путь создания, включая фотографии с их отображаемыми именами.
func FormFromRegistration(reg *Registration) RegistrationForm {
	photos := make([]Photo, len(reg.Photos))
	copy(photos, reg.Photos)
	amenities := make([]string, len(reg.Amenities))
	copy(amenities, reg.Amenities)

	return RegistrationForm{
		PropertyType: reg.PropertyType,
		Address:      reg.Address,
		Region:       reg.Region,
		Price:        reg.Price,
		Bedrooms:     reg.Bedrooms,
		Bathrooms:    reg.Bathrooms,
		Area:         reg.Area,
		Coordinates:  reg.Coordinates,
		Owner:        reg.Owner,
		Amenities:    amenities,
		Description:  reg.Description,
		Photos:       photos,
	}
}
