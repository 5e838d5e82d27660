package model

import "time"

// Области опций
const (
	AreaIMMO      = "IMMO"
	AreaDiagnosis = "Diagnosis"
	AreaDevice    = "Device"
)

// Категории опций в таблице. PROBLEMA в документе раскладывается
// на PROBLEMA_BY_SYSTEM и PROBLEMA_BY_AREA.
const (
	CategorySistema  = "SISTEMA"
	CategoryProblema = "PROBLEMA"
)

// OptionItem настраиваемая опция выпадающего списка: система или тип проблемы в области.
// У проблемы Parent - система, к которой она относится.
type OptionItem struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Area      string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_option_items_unique" json:"area"`
	Category  string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_option_items_unique" json:"category"`
	Label     string      `gorm:"type:varchar(150);not null;uniqueIndex:idx_option_items_unique" json:"label"`
	Order     uint        `gorm:"column:sort_order;not null;default:0" json:"order"` // Порядок внутри группы
	Active    bool        `gorm:"not null;default:true" json:"active"`
	ParentID  *uint       `gorm:"uniqueIndex:idx_option_items_unique" json:"parent_id,omitempty"`
	Parent    *OptionItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (OptionItem) TableName() string {
	return "option_items"
}
