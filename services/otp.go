package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lidetdev/lotto-backend/models"
	"github.com/lidetdev/lotto-backend/utils/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OTPTTL bounds how long an issued code stays redeemable.
const OTPTTL = 5 * time.Minute

// IssueOTP stores a fresh 6-digit code for a chat ID, replacing any pending
// one, and returns it for out-of-band delivery.
func IssueOTP(db *gorm.DB, chatID string) (string, error) {
	code := fmt.Sprintf("%06d", rand.IntN(900000)+100000)
	otp := models.OTP{
		TelegramChatID: chatID,
		Code:           code,
		ExpiresAt:      time.Now().Add(OTPTTL),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(&otp).Error
	if err != nil {
		return "", err
	}
	return code, nil
}

// Registration carries the account fields submitted alongside the OTP.
type Registration struct {
	Username   string
	Password   string
	ReferredBy string
}

// VerifyOTP consumes a pending code and creates the account, all in one
// transaction: a mismatch leaves the code redeemable, a success deletes it,
// and a failed account insert rolls the consumption back.
func VerifyOTP(db *gorm.DB, chatID, code string, reg Registration) (*models.User, error) {
	var user *models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		var otp models.OTP
		if err := tx.Where("telegram_chat_id = ?", chatID).First(&otp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		if otp.Code != code || time.Now().After(otp.ExpiresAt) {
			return ErrInvalidCode
		}

		var count int64
		if err := tx.Model(&models.User{}).
			Where("telegram_chat_id = ?", chatID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateIdentity
		}
		if err := tx.Model(&models.User{}).
			Where("username = ?", reg.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateName
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		created := models.User{
			Username:       reg.Username,
			TelegramChatID: chatID,
			PasswordHash:   string(hash),
			ReferredBy:     reg.ReferredBy,
		}
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateName
			}
			return err
		}

		if err := tx.Delete(&otp).Error; err != nil {
			return err
		}
		user = &created
		return nil
	})
	return user, err
}

// SweepExpiredOTPs deletes stale codes; wired to a minutely cron job.
func SweepExpiredOTPs(db *gorm.DB) {
	res := db.Where("expires_at < ?", time.Now()).Delete(&models.OTP{})
	if res.Error != nil {
		logger.Errorf("otp sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		logger.Debugf("otp sweep removed %d expired codes", res.RowsAffected)
	}
}
