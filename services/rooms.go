package services

import (
	"errors"

	"github.com/lidetdev/lotto-backend/models"
	"github.com/lidetdev/lotto-backend/utils/logger"
	"gorm.io/gorm"
)

// RoomTier is one configured pricing tier.
type RoomTier struct {
	Name      string
	CardPrice float64
}

// DefaultTiers mirrors the provisioned ETB price ladder.
var DefaultTiers = []RoomTier{
	{Name: "Bronze Room", CardPrice: 5.0},
	{Name: "Silver Room", CardPrice: 10.0},
	{Name: "Gold Room", CardPrice: 20.0},
}

// ProvisionRooms makes the stored room set exactly the configured tiers.
// A diverged set (wrong count, renamed room, edited price) is wiped and
// recreated; sessions and transactions are kept for auditing.
func ProvisionRooms(db *gorm.DB, tiers []RoomTier) error {
	var rooms []models.Room
	if err := db.Order("id").Find(&rooms).Error; err != nil {
		return err
	}

	if roomsMatchTiers(rooms, tiers) {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(rooms) > 0 {
			if err := tx.Where("1 = 1").Delete(&models.Room{}).Error; err != nil {
				return err
			}
		}
		for _, tier := range tiers {
			room := models.Room{Name: tier.Name, CardPrice: tier.CardPrice}
			if err := tx.Create(&room).Error; err != nil {
				return err
			}
		}
		logger.Infof("provisioned %d rooms", len(tiers))
		return nil
	})
}

func roomsMatchTiers(rooms []models.Room, tiers []RoomTier) bool {
	if len(rooms) != len(tiers) {
		return false
	}
	byName := make(map[string]float64, len(rooms))
	for _, r := range rooms {
		byName[r.Name] = r.CardPrice
	}
	for _, t := range tiers {
		price, ok := byName[t.Name]
		if !ok || price != t.CardPrice {
			return false
		}
	}
	return true
}

// ListRooms returns all rooms ordered by price.
func ListRooms(db *gorm.DB) ([]models.Room, error) {
	var rooms []models.Room
	err := db.Order("card_price").Find(&rooms).Error
	return rooms, err
}

// GetRoom loads a room by ID.
func GetRoom(db *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}
