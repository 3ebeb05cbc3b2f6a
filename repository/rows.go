package repository

import "github.com/yeremiapane/grubdash/models"

type dishRow struct {
	Seq         uint    `gorm:"primaryKey;autoIncrement"`
	RecordID    string  `gorm:"column:record_id;type:varchar(64);uniqueIndex;not null"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	ImageURL    string  `gorm:"column:image_url;type:text"`
}

func (dishRow) TableName() string { return "dishes" }

func toDishRow(d models.Dish) dishRow {
	return dishRow{
		RecordID:    d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func fromDishRow(r dishRow) models.Dish {
	return models.Dish{
		ID:          r.RecordID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}

type orderRow struct {
	Seq          uint                  `gorm:"primaryKey;autoIncrement"`
	RecordID     string                `gorm:"column:record_id;type:varchar(64);uniqueIndex;not null"`
	DeliverTo    string                `gorm:"type:varchar(255)"`
	MobileNumber string                `gorm:"type:varchar(64)"`
	Dishes       []models.DishLineItem `gorm:"type:text;serializer:json"`
	Status       string                `gorm:"type:varchar(32)"`
}

func (orderRow) TableName() string { return "orders" }

func toOrderRow(o models.Order) orderRow {
	return orderRow{
		RecordID:     o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Dishes:       cloneOrder(o).Dishes,
		Status:       o.Status,
	}
}

func fromOrderRow(r orderRow) models.Order {
	return models.Order{
		ID:           r.RecordID,
		DeliverTo:    r.DeliverTo,
		MobileNumber: r.MobileNumber,
		Dishes:       r.Dishes,
		Status:       r.Status,
	}
}
