package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"calllog-backend/models"
	"calllog-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepo is the relational Repository implementation. It expects a *gorm.DB
// opened with TranslateError so uniqueness violations surface as
// gorm.ErrDuplicatedKey regardless of the SQL driver.
type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// AutoMigrate applies the relational schema. Safe to call on every connect.
func (r *GormRepo) AutoMigrate() error {
	return r.db.AutoMigrate(
		&models.Master{}, &models.CallLogEntry{}, &models.User{},
		&models.EmailConfig{}, &models.AppConfig{},
	)
}

func parseSrNo(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q: %w", id, ErrNotFound)
	}
	return uint(n), nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// ---- Master ----

func (r *GormRepo) ListMasters() ([]models.Master, error) {
	var recs []models.Master
	if err := r.db.Order("sr_no").Find(&recs).Error; err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].ID = strconv.FormatUint(uint64(recs[i].SrNo), 10)
	}
	return recs, nil
}

func (r *GormRepo) GetMaster(id string) (*models.Master, error) {
	n, err := parseSrNo(id)
	if err != nil {
		return nil, err
	}
	var rec models.Master
	if err := r.db.First(&rec, "sr_no = ?", n).Error; err != nil {
		return nil, translate(err)
	}
	rec.ID = id
	return &rec, nil
}

func (r *GormRepo) GetMasterByMobile(mobileNo string) (*models.Master, error) {
	var rec models.Master
	if err := r.db.First(&rec, "mobile_no = ?", utils.Clean(mobileNo)).Error; err != nil {
		return nil, translate(err)
	}
	rec.ID = strconv.FormatUint(uint64(rec.SrNo), 10)
	return &rec, nil
}

func (r *GormRepo) CreateMaster(rec *models.Master) (string, error) {
	utils.TrimStrings(rec)
	if err := r.db.Create(rec).Error; err != nil {
		return "", translate(err)
	}
	rec.ID = strconv.FormatUint(uint64(rec.SrNo), 10)
	return rec.ID, nil
}

func (r *GormRepo) UpdateMaster(id string, rec *models.Master) error {
	n, err := parseSrNo(id)
	if err != nil {
		return err
	}
	utils.TrimStrings(rec)
	res := r.db.Model(&models.Master{}).Where("sr_no = ?", n).Updates(map[string]any{
		"mobile_no":   rec.MobileNo,
		"project":     rec.Project,
		"town_type":   rec.TownType,
		"requester":   rec.Requester,
		"rd_code":     rec.RDCode,
		"rd_name":     rec.RDName,
		"town":        rec.Town,
		"state":       rec.State,
		"designation": rec.Designation,
		"name":        rec.Name,
		"gst_no":      rec.GSTNo,
		"email_id":    rec.EmailID,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteMaster(id string) error {
	n, err := parseSrNo(id)
	if err != nil {
		return err
	}
	res := r.db.Delete(&models.Master{}, "sr_no = ?", n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) ReplaceAllMasters(recs []models.Master) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sr_no > 0").Delete(&models.Master{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.CreateInBatches(recs, 200).Error
	})
	if err != nil {
		return 0, translate(err)
	}
	return len(recs), nil
}

// ---- Call log ----

func (r *GormRepo) CreateCallLog(rec *models.CallLogEntry) (string, error) {
	utils.TrimStrings(rec)
	if rec.Date.IsZero() {
		rec.Date = time.Now().UTC()
	}
	if err := r.db.Create(rec).Error; err != nil {
		return "", translate(err)
	}
	rec.ID = strconv.FormatUint(uint64(rec.SrNo), 10)
	return rec.ID, nil
}

func (r *GormRepo) ListCallLogs(dr DateRange) ([]models.CallLogEntry, error) {
	q := r.db.Model(&models.CallLogEntry{})
	if dr.Start != nil {
		q = q.Where("date >= ?", *dr.Start)
	}
	if dr.End != nil {
		q = q.Where("date <= ?", *dr.End)
	}
	var recs []models.CallLogEntry
	if err := q.Order("date DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].ID = strconv.FormatUint(uint64(recs[i].SrNo), 10)
	}
	return recs, nil
}

// ---- Users ----

func (r *GormRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", utils.Clean(username)).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(rec *models.User) (string, error) {
	if err := r.db.Create(rec).Error; err != nil {
		return "", translate(err)
	}
	return rec.ID, nil
}

func (r *GormRepo) UpdateUserPassword(id string, hashed []byte) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteUser(id string) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Email configuration ----

func (r *GormRepo) GetEmailConfig() (*models.EmailConfig, error) {
	var cfg models.EmailConfig
	if err := r.db.First(&cfg, "config_id = ?", 1).Error; err != nil {
		return nil, translate(err)
	}
	return &cfg, nil
}

func (r *GormRepo) SaveEmailConfig(cfg *models.EmailConfig) error {
	cfg.ConfigID = 1
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_id"}},
		UpdateAll: true,
	}).Create(cfg).Error
}

func (r *GormRepo) DeleteEmailConfig() error {
	return r.db.Delete(&models.EmailConfig{}, "config_id = ?", 1).Error
}

// ---- Keyed configuration records ----

const (
	configKeyActive   = "active"
	configKeyDropdown = "dropdown_values"
)

func (r *GormRepo) getConfig(key string, out any) error {
	var row models.AppConfig
	if err := r.db.First(&row, "config_key = ?", key).Error; err != nil {
		return translate(err)
	}
	return json.Unmarshal(row.ConfigValue, out)
}

func (r *GormRepo) saveConfig(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
	}).Create(&models.AppConfig{ConfigKey: key, ConfigValue: payload}).Error
}

func (r *GormRepo) GetMiscData() (*models.MiscData, error) {
	var data models.MiscData
	if err := r.getConfig(configKeyDropdown, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *GormRepo) SaveMiscData(data *models.MiscData) error {
	return r.saveConfig(configKeyDropdown, data)
}

func (r *GormRepo) SaveAppSettings(settings *models.AppSettings) error {
	settings.CreatedAt = time.Now().UTC()
	return r.saveConfig(configKeyActive, settings)
}

// ---- Lifecycle ----

func (r *GormRepo) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r *GormRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
