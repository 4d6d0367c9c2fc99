package seed

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/models"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Run inserts the demo seller and two demo books if they are not already
// present. Invoked once at process start; every insert is guarded by an
// existence check so reruns are no-ops.
func Run(db *gorm.DB) error {
	var seller models.User
	err := db.Where("student_id = ?", "seed_seller").First(&seller).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		digest, err := bcrypt.GenerateFromPassword([]byte("seed123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		seller = models.User{
			StudentID:      "seed_seller",
			Name:           "种子卖家",
			Phone:          "13800000001",
			HashedPassword: string(digest),
			CreditScore:    100,
			IsActive:       true,
		}
		if err := db.Create(&seller).Error; err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count >= 2 {
		return nil
	}

	desc1 := "仅封面轻微磨损"
	desc2 := "有少量笔记标记"
	books := []models.Book{
		{
			ISBN:           "9787111122334",
			Title:          "数据结构与算法解析",
			Author:         "张三",
			OriginalPrice:  mustDecimal("59.00"),
			SellingPrice:   mustDecimal("25.00"),
			ConditionLevel: models.ConditionGood,
			Description:    &desc1,
			SellerID:       seller.ID,
			Status:         models.BookAvailable,
		},
		{
			ISBN:           "9787111445566",
			Title:          "计算机操作系统精要",
			Author:         "李四",
			OriginalPrice:  mustDecimal("72.00"),
			SellingPrice:   mustDecimal("30.00"),
			ConditionLevel: models.ConditionFair,
			Description:    &desc2,
			SellerID:       seller.ID,
			Status:         models.BookAvailable,
		},
	}
	return db.Create(&books).Error
}
