// file: database/flag_store.go
package database

import (
	"errors"

	"github.com/fontyslads/ctf-portal-sub001/models"
	"gorm.io/gorm"
)

// GormFlagStore 是 services.FlagStore 的 MySQL 实现
type GormFlagStore struct {
	db *gorm.DB
}

func NewFlagStore(db *gorm.DB) *GormFlagStore {
	return &GormFlagStore{db: db}
}

// FindByTeam 返回指定队伍的全部关卡，按 flag_number 升序
func (s *GormFlagStore) FindByTeam(team models.Team) ([]models.Flag, error) {
	var flags []models.Flag
	if err := s.db.Where("team = ?", team).Order("flag_number asc").Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

// FindByID 按主键查找；未找到时返回 (nil, nil)，调用方据此区分 NotFound 与存储故障
func (s *GormFlagStore) FindByID(id uint32) (*models.Flag, error) {
	var flag models.Flag
	err := s.db.First(&flag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

// SaveAll 在单个事务中批量落库，保证级联更新的起始时间不会写一半
func (s *GormFlagStore) SaveAll(flags []models.Flag) error {
	if len(flags) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range flags {
			if err := tx.Save(&flags[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Teams 返回关卡表中出现过的全部队伍
func (s *GormFlagStore) Teams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Model(&models.Flag{}).Distinct().Order("team asc").Pluck("team", &teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
