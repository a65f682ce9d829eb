package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"clubcourt/internal/config"
	"clubcourt/internal/database"
	"clubcourt/internal/domain"
	"clubcourt/internal/pkg/logger"
	"clubcourt/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("db connect", zap.Error(err))
	}

	zl.Info("running migrations")
	if err := repository.Migrate(db); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	// Clean old data in dependency order.
	zl.Info("cleaning old data")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM participants")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM sports")
	db.Exec("DELETE FROM members")

	ctx := context.Background()
	sportRepo := repository.NewSportRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	zl.Info("creating sports")
	netHeight := 3.05
	basketball := domain.NewSport("Basketball", 25, 10, 3*time.Hour, []int64{1, 2, 3})
	basketball.NetHeight = &netHeight

	rackets := true
	badminton := domain.NewSport("Badminton", 15, 5, 2*time.Hour, []int64{4, 5, 6, 7})
	badminton.RacketsProvided = &rackets

	tennis := domain.NewSport("Tennis", 20, 8, 0, []int64{8, 9})

	for _, sp := range []*domain.Sport{basketball, badminton, tennis} {
		if err := sportRepo.Create(ctx, sp); err != nil {
			zl.Fatal("seed sport", zap.String("sport", sp.Name), zap.Error(err))
		}
	}

	zl.Info("creating members")
	members := []struct {
		name      string
		financial bool
		sports    []string
	}{
		{"Alice Chan", true, []string{"Basketball", "Tennis"}},
		{"Bruno Costa", true, []string{"Badminton"}},
		{"Carol Reyes", false, []string{"Basketball"}},
		{"Dmitri Ong", true, []string{"Basketball", "Badminton", "Tennis"}},
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := memberRepo.Create(ctx, m.name, m.financial, m.sports)
		if err != nil {
			zl.Fatal("seed member", zap.String("member", m.name), zap.Error(err))
		}
		ids = append(ids, id)
	}

	zl.Info("creating sample bookings")
	tomorrow := domain.Day(time.Now().AddDate(0, 0, 1))
	samples := []*domain.Booking{
		{MemberID: ids[0], CourtID: 1, Date: tomorrow, Start: tomorrow.Add(10 * time.Hour), End: tomorrow.Add(12 * time.Hour)},
		{MemberID: ids[1], CourtID: 4, Date: tomorrow, Start: tomorrow.Add(18 * time.Hour), End: tomorrow.Add(20 * time.Hour)},
	}
	for _, b := range samples {
		if err := bookingRepo.Insert(ctx, b); err != nil {
			zl.Fatal("seed booking", zap.Int64("member", b.MemberID), zap.Error(err))
		}
	}

	zl.Info("seed complete",
		zap.Int("sports", 3),
		zap.Int("members", len(ids)),
		zap.Int("bookings", len(samples)),
	)
}
