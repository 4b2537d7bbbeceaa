package repositories

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"motostock-api/models"
)

// MotorcycleRepository persists Motorcycle records.
type MotorcycleRepository struct {
	db *gorm.DB
}

var _ Repository[models.Motorcycle, uint] = (*MotorcycleRepository)(nil)

func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

// Save inserts the motorcycle and fills in its storage-assigned id.
func (r *MotorcycleRepository) Save(moto *models.Motorcycle) error {
	result := r.db.Create(moto)
	if result.Error != nil {
		log.Printf("Error saving motorcycle: %v", result.Error)
		return fmt.Errorf("save motorcycle: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("save motorcycle: no rows affected")
	}
	return nil
}

// Update overwrites every field except the id on the matching row.
func (r *MotorcycleRepository) Update(moto *models.Motorcycle) error {
	result := r.db.Model(&models.Motorcycle{}).
		Where("id = ?", moto.ID).
		Updates(map[string]interface{}{
			"brand":        moto.Brand,
			"displacement": moto.Displacement,
			"price":        moto.Price,
			"color":        moto.Color,
		})
	if result.Error != nil {
		log.Printf("Error updating motorcycle %d: %v", moto.ID, result.Error)
		return fmt.Errorf("update motorcycle: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MotorcycleRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Motorcycle{}, id)
	if result.Error != nil {
		log.Printf("Error deleting motorcycle %d: %v", id, result.Error)
		return fmt.Errorf("delete motorcycle: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MotorcycleRepository) FindByID(id uint) (*models.Motorcycle, error) {
	var moto models.Motorcycle
	if err := r.db.First(&moto, id).Error; err != nil {
		err = translate(err)
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		log.Printf("Error finding motorcycle %d: %v", id, err)
		return nil, fmt.Errorf("find motorcycle: %w", err)
	}
	return &moto, nil
}

func (r *MotorcycleRepository) FindAll() ([]models.Motorcycle, error) {
	motos := []models.Motorcycle{}
	if err := r.db.Find(&motos).Error; err != nil {
		log.Printf("Error listing motorcycles: %v", err)
		return nil, fmt.Errorf("list motorcycles: %w", translate(err))
	}
	return motos, nil
}

// FindByBrand matches brands containing the given text, ignoring case.
// The substring is wildcard-wrapped and bound as a parameter.
func (r *MotorcycleRepository) FindByBrand(brand string) ([]models.Motorcycle, error) {
	motos := []models.Motorcycle{}
	pattern := "%" + strings.ToLower(brand) + "%"
	if err := r.db.Where("LOWER(brand) LIKE ?", pattern).Find(&motos).Error; err != nil {
		log.Printf("Error searching motorcycles by brand: %v", err)
		return nil, fmt.Errorf("find by brand: %w", translate(err))
	}
	return motos, nil
}

// FindByMaxPrice returns every motorcycle priced at or under ceiling.
func (r *MotorcycleRepository) FindByMaxPrice(ceiling float64) ([]models.Motorcycle, error) {
	motos := []models.Motorcycle{}
	if err := r.db.Where("price <= ?", ceiling).Find(&motos).Error; err != nil {
		log.Printf("Error searching motorcycles by price: %v", err)
		return nil, fmt.Errorf("find by max price: %w", translate(err))
	}
	return motos, nil
}

// FindByDisplacementRange returns motorcycles whose displacement lies
// within [min, max], bounds included.
func (r *MotorcycleRepository) FindByDisplacementRange(min, max int) ([]models.Motorcycle, error) {
	motos := []models.Motorcycle{}
	if err := r.db.Where("displacement BETWEEN ? AND ?", min, max).Find(&motos).Error; err != nil {
		log.Printf("Error searching motorcycles by displacement: %v", err)
		return nil, fmt.Errorf("find by displacement range: %w", translate(err))
	}
	return motos, nil
}
