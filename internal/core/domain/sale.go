package domain

import (
	"time"
)

// ContactTriple - контакт продавца/покупателя в записи о продаже.
type ContactTriple struct {
	Name  string
	Phone string
	Email string
}

// Sale связывает заявку на регистрацию с фактом продажи.
// Обе цены строго положительны, дата продажи не может быть в будущем -
// это проверяется до любого сетевого вызова.
type Sale struct {
	ID             string
	RegistrationID string

	Seller ContactTriple
	Buyer  ContactTriple

	ListedPrice float64
	SoldPrice   float64
	DateSold    time.Time

	Photos []Photo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaleForm - состояние формы продажи до отправки.
type SaleForm struct {
	RegistrationID string
	Seller         ContactTriple
	Buyer          ContactTriple
	ListedPrice    float64
	SoldPrice      float64
	DateSold       time.Time
	Photos         []Photo
	PendingPhotos  []PendingPhoto
}

// Transfer - переоформление права собственности с текущего владельца на нового.
// Может идти в связке с продажей (тогда присутствуют цены и дата).
type Transfer struct {
	ID             string
	RegistrationID string

	CurrentOwner ContactTriple
	NewOwner     ContactTriple

	// Опциональная "продажная" часть. Если цены заданы, к ним применяются
	// те же правила валидации, что и к Sale.
	ListedPrice *float64
	SoldPrice   *float64
	DateSold    *time.Time

	Reason string

	CreatedAt time.Time
}

// TransferForm - состояние формы переоформления.
type TransferForm struct {
	RegistrationID string
	CurrentOwner   ContactTriple
	NewOwner       ContactTriple
	ListedPrice    *float64
	SoldPrice      *float64
	DateSold       *time.Time
	Reason         string
}
