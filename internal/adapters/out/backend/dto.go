package backend

import (
	"time"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/measurement"
	"seedflow/internal/core/domain/model/order"
)

// OrderDTO mirrors the backend's order resource.
type OrderDTO struct {
	ID              string     `json:"id"`
	Crop            string     `json:"crop"`
	Variety         string     `json:"variety"`
	LotNumber       string     `json:"lotNumber"`
	Status          string     `json:"status"`
	Operator        string     `json:"operator,omitempty"`
	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	Recipe          *RecipeDTO `json:"recipe,omitempty"`
	Numbers         NumbersDTO `json:"numbers"`
}

// RecipeDTO mirrors the recipe summary embedded in an order resource.
type RecipeDTO struct {
	SeedUnitCount int `json:"seedUnitCount"`
}

// NumbersDTO mirrors the nullable dosage figures; absent or null JSON
// fields stay nil deliberately, because a null figure blocks finalization.
type NumbersDTO struct {
	SeedsToTreatKg     *float64 `json:"seedsToTreatKg"`
	BagSizeKg          *float64 `json:"bagSizeKg"`
	ExtraSlurryPercent *float64 `json:"extraSlurryPercent"`
	SlurryPerBagLitres *float64 `json:"slurryPerBagLitres"`
	TotalSlurryLitres  *float64 `json:"totalSlurryLitres"`
}

// MeasurementDTO mirrors the backend's TKW measurement resource.
type MeasurementDTO struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	Value      float64   `json:"value"`
	CapturedAt time.Time `json:"capturedAt"`
}

// ProfileDTO mirrors the backend's authenticated-user resource.
type ProfileDTO struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	LabEnabled bool     `json:"labEnabled"`
}

// errorDTO mirrors the backend's error envelope.
type errorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var recipe *order.RecipeSummary
	if dto.Recipe != nil {
		recipe = &order.RecipeSummary{SeedUnitCount: dto.Recipe.SeedUnitCount}
	}

	return order.RestoreOrder(
		id,
		dto.Crop,
		dto.Variety,
		dto.LotNumber,
		status,
		dto.Operator,
		dto.ApplicationDate,
		recipe,
		order.TreatmentNumbers{
			SeedsToTreatKg:     dto.Numbers.SeedsToTreatKg,
			BagSizeKg:          dto.Numbers.BagSizeKg,
			ExtraSlurryPercent: dto.Numbers.ExtraSlurryPercent,
			SlurryPerBagLitres: dto.Numbers.SlurryPerBagLitres,
			TotalSlurryLitres:  dto.Numbers.TotalSlurryLitres,
		},
	)
}

func orderFromDomain(aggregate *order.Order) OrderDTO {
	var recipe *RecipeDTO
	if aggregate.Recipe() != nil {
		recipe = &RecipeDTO{SeedUnitCount: aggregate.Recipe().SeedUnitCount}
	}

	numbers := aggregate.Numbers()

	return OrderDTO{
		ID:              aggregate.ID().String(),
		Crop:            aggregate.Crop(),
		Variety:         aggregate.Variety(),
		LotNumber:       aggregate.LotNumber(),
		Status:          aggregate.Status().String(),
		Operator:        aggregate.Operator(),
		ApplicationDate: aggregate.ApplicationDate(),
		Recipe:          recipe,
		Numbers: NumbersDTO{
			SeedsToTreatKg:     numbers.SeedsToTreatKg,
			BagSizeKg:          numbers.BagSizeKg,
			ExtraSlurryPercent: numbers.ExtraSlurryPercent,
			SlurryPerBagLitres: numbers.SlurryPerBagLitres,
			TotalSlurryLitres:  numbers.TotalSlurryLitres,
		},
	}
}

func (dto MeasurementDTO) toDomain() (measurement.Measurement, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return measurement.Measurement{}, err
	}

	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return measurement.Measurement{}, err
	}

	return measurement.NewMeasurement(id, orderID, dto.Value, dto.CapturedAt)
}

func (dto ProfileDTO) toDomain() (account.User, error) {
	roles := make([]account.Role, 0, len(dto.Roles))
	for _, name := range dto.Roles {
		role, err := account.RoleFromString(name)
		if err != nil {
			return account.User{}, err
		}
		roles = append(roles, role)
	}

	return account.NewUser(dto.Name, dto.Email, roles, dto.LabEnabled)
}
