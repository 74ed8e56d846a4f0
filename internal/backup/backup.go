// Package backup implements the import and export of the full
// application state as a single JSON blob.
//
// The blob layout is the storage format of the original web app, so
// existing exports can be restored without conversion: month indexes
// in it are zero based and resource ids are plain strings.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

var (
	ErrInvalidBlob     = errors.New("the backup data is not a valid backup blob")
	ErrWrongCurrency   = errors.New("the backup was exported for a different currency")
	ErrUnknownCurrency = errors.New("the backup specifies an unknown currency")
)

// All amounts are Vietnamese đồng.
var vnd = currency.MustParseISO("VND")

// Blob is the exchange format for a full state backup.
type Blob struct {
	GasHistory      []GasLog   `json:"gasHistory"`
	LastWifiPayment *time.Time `json:"lastWifiPayment"`
	Debts           []Debt     `json:"debts"`
	IncomeLogs      []MoneyLog `json:"incomeLogs"`
	FoodLogs        []MoneyLog `json:"foodLogs"`
	MiscLogs        []MoneyLog `json:"miscLogs"`

	SavingsBalance decimal.Decimal  `json:"savingsBalance"`
	FoodBudget     *decimal.Decimal `json:"foodBudget"`
	MiscBudget     *decimal.Decimal `json:"miscBudget"`

	Holidays []Holiday `json:"holidays"`

	// Currency is not part of the original format. It is written on
	// export and, when present, validated on import.
	Currency string `json:"currency,omitempty"`
}

type GasLog struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

type MoneyLog struct {
	ID                  string          `json:"id"`
	Amount              decimal.Decimal `json:"amount"`
	Date                time.Time       `json:"date"`
	Name                string          `json:"name,omitempty"`
	IsSavingsWithdrawal bool            `json:"isSavingsWithdrawal,omitempty"`
}

type Debt struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Source       string          `json:"source"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	DueDate      time.Time       `json:"dueDate"`
	CreatedAt    time.Time       `json:"createdAt"`
	TargetMonth  *int            `json:"targetMonth,omitempty"` // Zero based, January is 0
	TargetYear   *int            `json:"targetYear,omitempty"`
	Transactions []Transaction   `json:"transactions"`
}

type Transaction struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Reason string          `json:"reason,omitempty"`
}

type Holiday struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	IsTakingOff bool       `json:"isTakingOff"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// Parse reads a backup blob, validates the currency and fills in the
// defaults for fields older exports do not carry.
func Parse(data []byte) (Blob, error) {
	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		return Blob{}, fmt.Errorf("%w: %s", ErrInvalidBlob, err)
	}

	if blob.Currency != "" {
		unit, err := currency.ParseISO(blob.Currency)
		if err != nil {
			return Blob{}, ErrUnknownCurrency
		}

		if unit != vnd {
			return Blob{}, ErrWrongCurrency
		}
	}

	if blob.FoodBudget == nil {
		food := models.DefaultFoodBudget
		blob.FoodBudget = &food
	}
	if blob.MiscBudget == nil {
		misc := models.DefaultMiscBudget
		blob.MiscBudget = &misc
	}

	return blob, nil
}

// Import replaces the entire application state with the blob's
// contents in one transaction. On any error the state is untouched.
func Import(blob Blob) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.DebtTransaction{},
			&models.Debt{},
			&models.Entry{},
			&models.GasFill{},
			&models.Holiday{},
			&models.Settings{},
		} {
			err := tx.Unscoped().Where("1 = 1").Delete(model).Error
			if err != nil {
				return err
			}
		}

		for _, log := range blob.GasHistory {
			err := tx.Create(&models.GasFill{Date: log.Date, ImportID: log.ID}).Error
			if err != nil {
				return err
			}
		}

		entries := make([]models.Entry, 0)
		for _, log := range blob.IncomeLogs {
			entries = append(entries, models.Entry{
				Category:          models.CategoryIncome,
				Date:              log.Date,
				Amount:            log.Amount,
				SavingsWithdrawal: log.IsSavingsWithdrawal,
				ImportID:          log.ID,
			})
		}
		for _, log := range blob.FoodLogs {
			entries = append(entries, models.Entry{
				Category: models.CategoryFood,
				Date:     log.Date,
				Amount:   log.Amount,
				ImportID: log.ID,
			})
		}
		for _, log := range blob.MiscLogs {
			entries = append(entries, models.Entry{
				Category: models.CategoryMisc,
				Name:     log.Name,
				Date:     log.Date,
				Amount:   log.Amount,
				ImportID: log.ID,
			})
		}

		for _, entry := range entries {
			err := tx.Create(&entry).Error
			if err != nil {
				return err
			}
		}

		for _, d := range blob.Debts {
			// The creation time is part of the blob, gorm keeps a
			// non-zero CreatedAt as is
			debt := models.Debt{
				DefaultModel: models.DefaultModel{
					Timestamps: models.Timestamps{CreatedAt: d.CreatedAt},
				},
				Name:        d.Name,
				Source:      d.Source,
				TotalAmount: d.TotalAmount,
				AmountPaid:  d.AmountPaid,
				DueDate:     d.DueDate,
				ImportID:    d.ID,
			}

			if d.TargetMonth != nil && d.TargetYear != nil {
				debt.TargetMonth = types.NewMonth(*d.TargetYear, time.Month(*d.TargetMonth+1))
			}

			err := tx.Create(&debt).Error
			if err != nil {
				return err
			}

			for _, t := range d.Transactions {
				transactionType := models.TransactionType(t.Type)
				if transactionType != models.TransactionPayment && transactionType != models.TransactionWithdrawal {
					return models.ErrTransactionTypeInvalid
				}

				err = tx.Create(&models.DebtTransaction{
					DebtID:   debt.ID,
					Date:     t.Date,
					Amount:   t.Amount,
					Type:     transactionType,
					Reason:   t.Reason,
					ImportID: t.ID,
				}).Error
				if err != nil {
					return err
				}
			}
		}

		for _, h := range blob.Holidays {
			err := tx.Create(&models.Holiday{
				HolidayID: h.ID,
				Name:      h.Name,
				Date:      h.Date,
				TakingOff: h.IsTakingOff,
				StartDate: h.StartDate,
				EndDate:   h.EndDate,
				Note:      h.Note,
			}).Error
			if err != nil {
				return err
			}
		}

		return tx.Create(&models.Settings{
			ID:                  1,
			SavingsBalance:      blob.SavingsBalance,
			FoodBudget:          *blob.FoodBudget,
			MiscBudget:          *blob.MiscBudget,
			LastInternetPayment: blob.LastWifiPayment,
		}).Error
	})
}

// blobID returns the id a record is exported under. Imported records
// keep the id their backup carried, everything else uses the UUID.
func blobID(importID string, id uuid.UUID) string {
	if importID != "" {
		return importID
	}

	return id.String()
}

// Export builds a backup blob from the current application state.
// Records are exported in creation order, so importing a blob and
// exporting again yields the blob unchanged.
func Export() (Blob, error) {
	settings, err := models.LoadSettings()
	if err != nil {
		return Blob{}, err
	}

	blob := Blob{
		GasHistory:      make([]GasLog, 0),
		LastWifiPayment: settings.LastInternetPayment,
		Debts:           make([]Debt, 0),
		IncomeLogs:      make([]MoneyLog, 0),
		FoodLogs:        make([]MoneyLog, 0),
		MiscLogs:        make([]MoneyLog, 0),
		SavingsBalance:  settings.SavingsBalance,
		FoodBudget:      &settings.FoodBudget,
		MiscBudget:      &settings.MiscBudget,
		Holidays:        make([]Holiday, 0),
		Currency:        vnd.String(),
	}

	var fills []models.GasFill
	err = models.DB.Order("created_at ASC, date ASC").Find(&fills).Error
	if err != nil {
		return Blob{}, err
	}
	for _, fill := range fills {
		blob.GasHistory = append(blob.GasHistory, GasLog{ID: blobID(fill.ImportID, fill.ID), Date: fill.Date})
	}

	var entries []models.Entry
	err = models.DB.Order("created_at ASC, date ASC").Find(&entries).Error
	if err != nil {
		return Blob{}, err
	}
	for _, entry := range entries {
		log := MoneyLog{
			ID:                  blobID(entry.ImportID, entry.ID),
			Amount:              entry.Amount,
			Date:                entry.Date,
			Name:                entry.Name,
			IsSavingsWithdrawal: entry.SavingsWithdrawal,
		}

		switch entry.Category {
		case models.CategoryIncome:
			blob.IncomeLogs = append(blob.IncomeLogs, log)
		case models.CategoryFood:
			blob.FoodLogs = append(blob.FoodLogs, log)
		case models.CategoryMisc:
			blob.MiscLogs = append(blob.MiscLogs, log)
		}
	}

	var debts []models.Debt
	err = models.DB.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, date ASC")
		}).
		Order("created_at ASC, due_date ASC").
		Find(&debts).Error
	if err != nil {
		return Blob{}, err
	}
	for _, debt := range debts {
		d := Debt{
			ID:           blobID(debt.ImportID, debt.ID),
			Name:         debt.Name,
			Source:       debt.Source,
			TotalAmount:  debt.TotalAmount,
			AmountPaid:   debt.AmountPaid,
			DueDate:      debt.DueDate,
			CreatedAt:    debt.CreatedAt,
			Transactions: make([]Transaction, 0),
		}

		if !debt.TargetMonth.IsZero() {
			month := int(debt.TargetMonth.Month()) - 1
			year := debt.TargetMonth.Year()
			d.TargetMonth = &month
			d.TargetYear = &year
		}

		for _, t := range debt.Transactions {
			d.Transactions = append(d.Transactions, Transaction{
				ID:     blobID(t.ImportID, t.ID),
				Date:   t.Date,
				Amount: t.Amount,
				Type:   string(t.Type),
				Reason: t.Reason,
			})
		}

		blob.Debts = append(blob.Debts, d)
	}

	var holidays []models.Holiday
	err = models.DB.Order("date ASC").Find(&holidays).Error
	if err != nil {
		return Blob{}, err
	}
	for _, holiday := range holidays {
		blob.Holidays = append(blob.Holidays, Holiday{
			ID:          holiday.HolidayID,
			Name:        holiday.Name,
			Date:        holiday.Date,
			IsTakingOff: holiday.TakingOff,
			StartDate:   holiday.StartDate,
			EndDate:     holiday.EndDate,
			Note:        holiday.Note,
		})
	}

	return blob, nil
}
