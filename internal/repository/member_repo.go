package repository

import (
	"context"

	"gorm.io/gorm"

	"clubcourt/internal/domain"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name"`
	Financial bool   `gorm:"column:financial"`
}

func (memberModel) TableName() string { return "members" }

type participantModel struct {
	MemberID int64 `gorm:"column:member_id;primaryKey"`
	SportID  int64 `gorm:"column:sport_id;primaryKey"`
}

func (participantModel) TableName() string { return "participants" }

// GetAllMembers loads every member together with the names of the sports
// they are registered for.
func (r *MemberRepository) GetAllMembers(ctx context.Context) ([]*domain.Member, error) {
	var ms []memberModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	type playedRow struct {
		MemberID int64
		Name     string
	}
	var rows []playedRow
	q := `
SELECT p.member_id AS member_id, s.name AS name
FROM participants p
INNER JOIN sports s ON s.id = p.sport_id
ORDER BY p.member_id, s.id
`
	if tx := r.db.WithContext(ctx).Raw(q).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	played := make(map[int64][]string, len(ms))
	for _, row := range rows {
		played[row.MemberID] = append(played[row.MemberID], row.Name)
	}

	out := make([]*domain.Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.NewMember(m.ID, m.Name, m.Financial, played[m.ID]))
	}
	return out, nil
}

// Create inserts a member and their sport registrations. Used by the seed
// tool.
func (r *MemberRepository) Create(ctx context.Context, name string, financial bool, sportNames []string) (int64, error) {
	m := memberModel{Name: name, Financial: financial}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return 0, tx.Error
	}
	for _, sportName := range sportNames {
		var sp sportModel
		if tx := r.db.WithContext(ctx).Where("name = ?", sportName).First(&sp); tx.Error != nil {
			return 0, tx.Error
		}
		p := participantModel{MemberID: m.ID, SportID: sp.ID}
		if tx := r.db.WithContext(ctx).Create(&p); tx.Error != nil {
			return 0, tx.Error
		}
	}
	return m.ID, nil
}
