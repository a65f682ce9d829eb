package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"clubcourt/internal/domain"
)

type SportRepository struct {
	db *gorm.DB
}

func NewSportRepository(db *gorm.DB) *SportRepository {
	return &SportRepository{db: db}
}

type sportModel struct {
	ID              int64    `gorm:"column:id;primaryKey"`
	Name            string   `gorm:"column:name;uniqueIndex"`
	UsageFee        float64  `gorm:"column:usage_fee"`
	InsuranceFee    float64  `gorm:"column:insurance_fee"`
	MaxHours        int      `gorm:"column:max_hours"`
	NetHeight       *float64 `gorm:"column:net_height"`
	RacketsProvided *bool    `gorm:"column:rackets_provided"`
}

func (sportModel) TableName() string { return "sports" }

type courtModel struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	SportID int64 `gorm:"column:sport_id;index"`
}

func (courtModel) TableName() string { return "courts" }

// GetAllSports loads every sport with its court numbers in stored order.
func (r *SportRepository) GetAllSports(ctx context.Context) ([]*domain.Sport, error) {
	var sms []sportModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&sms); tx.Error != nil {
		return nil, tx.Error
	}
	var cms []courtModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&cms); tx.Error != nil {
		return nil, tx.Error
	}

	courtsBySport := make(map[int64][]int64, len(sms))
	for _, c := range cms {
		courtsBySport[c.SportID] = append(courtsBySport[c.SportID], c.ID)
	}

	out := make([]*domain.Sport, 0, len(sms))
	for _, m := range sms {
		sp := domain.NewSport(
			m.Name,
			m.UsageFee,
			m.InsuranceFee,
			time.Duration(m.MaxHours)*time.Hour,
			courtsBySport[m.ID],
		)
		sp.NetHeight = m.NetHeight
		sp.RacketsProvided = m.RacketsProvided
		out = append(out, sp)
	}
	return out, nil
}

// Create inserts a sport and its courts. Used by the seed tool.
func (r *SportRepository) Create(ctx context.Context, sp *domain.Sport) error {
	m := sportModel{
		Name:            sp.Name,
		UsageFee:        sp.UsageFee,
		InsuranceFee:    sp.InsuranceFee,
		MaxHours:        int(sp.MaxDuration.Hours()),
		NetHeight:       sp.NetHeight,
		RacketsProvided: sp.RacketsProvided,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	for _, c := range sp.Courts() {
		cm := courtModel{ID: c.ID, SportID: m.ID}
		if tx := r.db.WithContext(ctx).Create(&cm); tx.Error != nil {
			return tx.Error
		}
	}
	return nil
}

// Migrate creates or updates the schema for every table the club needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&memberModel{},
		&sportModel{},
		&courtModel{},
		&participantModel{},
		&bookingModel{},
	)
}
