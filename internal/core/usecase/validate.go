package usecase

import (
	"strings"
	"time"

	"housing-dashboard-service/internal/core/domain"
)

// Правила валидации форм. Все проверки выполняются до любого сетевого
// вызова: форма с нарушениями не приводит к частичной отправке.

func validateEmail(errs *domain.ValidationError, field, email string) {
	if email == "" {
		return
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		errs.Add(field, "invalid email format")
	}
}

func validateRegistrationForm(form *domain.RegistrationForm) error {
	errs := domain.NewValidationError()

	if strings.TrimSpace(form.PropertyType) == "" {
		errs.Add("propertyType", "property type is required")
	}
	if strings.TrimSpace(form.Address) == "" {
		errs.Add("address", "address is required")
	}
	if form.Price <= 0 {
		errs.Add("price", "price must be greater than zero")
	}
	if form.Bedrooms < 0 {
		errs.Add("bedrooms", "bedrooms cannot be negative")
	}
	if form.Bathrooms < 0 {
		errs.Add("bathrooms", "bathrooms cannot be negative")
	}
	if form.Area < 0 {
		errs.Add("area", "area cannot be negative")
	}
	if strings.TrimSpace(form.Owner.Name) == "" {
		errs.Add("ownerName", "owner name is required")
	}
	if strings.TrimSpace(form.Owner.Phone) == "" {
		errs.Add("ownerPhone", "owner phone is required")
	}
	validateEmail(errs, "ownerEmail", form.Owner.Email)

	for _, amenity := range form.Amenities {
		if !domain.KnownAmenity(amenity) {
			errs.Add("amenities", "unknown amenity: "+amenity)
			break
		}
	}

	if form.Coordinates != nil {
		if form.Coordinates.Latitude < -90 || form.Coordinates.Latitude > 90 {
			errs.Add("latitude", "latitude must be between -90 and 90")
		}
		if form.Coordinates.Longitude < -180 || form.Coordinates.Longitude > 180 {
			errs.Add("longitude", "longitude must be between -180 and 180")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateSalePrices - общие правила для продажи и "продажной" части
// переоформления: обе цены строго положительны, дата не в будущем.
func validateSalePrices(errs *domain.ValidationError, listed, sold float64, dateSold time.Time, now time.Time) {
	if listed <= 0 {
		errs.Add("listedPrice", "listed price must be greater than zero")
	}
	if sold <= 0 {
		errs.Add("soldPrice", "sold price must be greater than zero")
	}
	if dateSold.IsZero() {
		errs.Add("dateSold", "date sold is required")
	} else if dateSold.After(now) {
		errs.Add("dateSold", "date sold cannot be in the future")
	}
}

func validateSaleForm(form *domain.SaleForm, now time.Time) error {
	errs := domain.NewValidationError()

	if strings.TrimSpace(form.RegistrationID) == "" {
		errs.Add("registrationId", "registration is required")
	}
	if strings.TrimSpace(form.Seller.Name) == "" {
		errs.Add("sellerName", "seller name is required")
	}
	if strings.TrimSpace(form.Buyer.Name) == "" {
		errs.Add("buyerName", "buyer name is required")
	}
	validateEmail(errs, "sellerEmail", form.Seller.Email)
	validateEmail(errs, "buyerEmail", form.Buyer.Email)

	validateSalePrices(errs, form.ListedPrice, form.SoldPrice, form.DateSold, now)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateTransferForm(form *domain.TransferForm, now time.Time) error {
	errs := domain.NewValidationError()

	if strings.TrimSpace(form.RegistrationID) == "" {
		errs.Add("registrationId", "registration is required")
	}
	if strings.TrimSpace(form.CurrentOwner.Name) == "" {
		errs.Add("currentOwnerName", "current owner name is required")
	}
	if strings.TrimSpace(form.NewOwner.Name) == "" {
		errs.Add("newOwnerName", "new owner name is required")
	}
	validateEmail(errs, "currentOwnerEmail", form.CurrentOwner.Email)
	validateEmail(errs, "newOwnerEmail", form.NewOwner.Email)

	// Продажная часть опциональна, но либо целиком, либо никак
	hasSalePart := form.ListedPrice != nil || form.SoldPrice != nil || form.DateSold != nil
	if hasSalePart {
		if form.ListedPrice == nil || form.SoldPrice == nil || form.DateSold == nil {
			errs.Add("salePart", "listed price, sold price and date sold must be provided together")
		} else {
			validateSalePrices(errs, *form.ListedPrice, *form.SoldPrice, *form.DateSold, now)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
