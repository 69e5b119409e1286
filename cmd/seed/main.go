package main

import (
	"github.com/mocnhien/storefront/internal/config"
	"github.com/mocnhien/storefront/internal/logger"
	"github.com/mocnhien/storefront/internal/models"
)

// Seeds demo furniture categories and products for local development.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	categories := []models.Category{
		{
			Slug: "ban",
			NameJSON: models.JSON{
				"vi": "Bàn",
				"en": "Tables",
			},
			SortOrder: 1,
		},
		{
			Slug: "ghe",
			NameJSON: models.JSON{
				"vi": "Ghế",
				"en": "Chairs",
			},
			SortOrder: 2,
		},
		{
			Slug: "tu-ke",
			NameJSON: models.JSON{
				"vi": "Tủ và kệ",
				"en": "Storage",
			},
			SortOrder: 3,
		},
		{
			Slug: "sofa",
			NameJSON: models.JSON{
				"vi": "Sofa",
				"en": "Sofas",
			},
			SortOrder: 4,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"ban", "ghe", "tu-ke", "sofa"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	products := []models.Product{
		{
			Slug:       "ban-an-go-soi-6-cho",
			CategoryID: categoryIDs["ban"],
			NameJSON: models.JSON{
				"vi": "Bàn ăn gỗ sồi 6 chỗ",
				"en": "Oak Dining Table, Seats 6",
			},
			DescriptionJSON: models.JSON{
				"vi": "Bàn ăn gỗ sồi tự nhiên, hoàn thiện dầu lau, phù hợp gia đình 6 người.",
				"en": "Solid oak dining table with an oiled finish, comfortably seats six.",
			},
			Material:    "Gỗ sồi tự nhiên",
			Dimensions:  "180 x 90 x 75 cm",
			PriceAmount: models.NewMoneyFromInt(12500000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1577140917170-285929fb55b7?w=800",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Slug:       "ban-tra-tron-oc-cho",
			CategoryID: categoryIDs["ban"],
			NameJSON: models.JSON{
				"vi": "Bàn trà tròn gỗ óc chó",
				"en": "Round Walnut Coffee Table",
			},
			DescriptionJSON: models.JSON{
				"vi": "Bàn trà mặt tròn gỗ óc chó, chân thon tiện tay.",
				"en": "Round walnut coffee table with hand-turned tapered legs.",
			},
			Material:        "Gỗ óc chó",
			Dimensions:      "80 x 80 x 45 cm",
			PriceAmount:     models.NewMoneyFromInt(5900000),
			SalePriceAmount: moneyPtr(4900000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=800",
			},
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Slug:       "ghe-an-go-tan-bi",
			CategoryID: categoryIDs["ghe"],
			NameJSON: models.JSON{
				"vi": "Ghế ăn gỗ tần bì đệm nỉ",
				"en": "Ash Dining Chair, Upholstered",
			},
			DescriptionJSON: models.JSON{
				"vi": "Ghế ăn khung gỗ tần bì, đệm nỉ màu xám nhạt, lưng cong ôm người.",
				"en": "Ash frame dining chair with light grey fabric seat and curved backrest.",
			},
			Material:    "Gỗ tần bì, nỉ",
			Dimensions:  "45 x 52 x 82 cm",
			PriceAmount: models.NewMoneyFromInt(1650000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1503602642458-232111445657?w=800",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Slug:       "ghe-may-thu-gian",
			CategoryID: categoryIDs["ghe"],
			NameJSON: models.JSON{
				"vi": "Ghế mây thư giãn",
				"en": "Rattan Lounge Chair",
			},
			DescriptionJSON: models.JSON{
				"vi": "Ghế thư giãn đan mây thủ công, khung gỗ keo.",
				"en": "Hand-woven rattan lounge chair on an acacia frame.",
			},
			Material:        "Mây, gỗ keo",
			Dimensions:      "65 x 70 x 80 cm",
			PriceAmount:     models.NewMoneyFromInt(3200000),
			SalePriceAmount: moneyPtr(2790000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=800",
			},
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Slug:       "tu-quan-ao-2-canh",
			CategoryID: categoryIDs["tu-ke"],
			NameJSON: models.JSON{
				"vi": "Tủ quần áo 2 cánh gỗ cao su",
				"en": "Two-Door Rubberwood Wardrobe",
			},
			DescriptionJSON: models.JSON{
				"vi": "Tủ quần áo 2 cánh, 1 ngăn kéo, gỗ cao su sơn trắng.",
				"en": "Two-door wardrobe with one drawer, white-painted rubberwood.",
			},
			Material:    "Gỗ cao su",
			Dimensions:  "100 x 55 x 190 cm",
			PriceAmount: models.NewMoneyFromInt(7800000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1595428774223-ef52624120d2?w=800",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Slug:       "ke-sach-5-tang",
			CategoryID: categoryIDs["tu-ke"],
			NameJSON: models.JSON{
				"vi": "Kệ sách 5 tầng",
				"en": "Five-Tier Bookshelf",
			},
			DescriptionJSON: models.JSON{
				"vi": "Kệ sách 5 tầng gỗ thông, chịu tải 30kg mỗi tầng.",
				"en": "Five-tier pine bookshelf, each shelf holds up to 30kg.",
			},
			Material:    "Gỗ thông",
			Dimensions:  "80 x 30 x 180 cm",
			PriceAmount: models.NewMoneyFromInt(2450000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1594620302200-9a762244a156?w=800",
			},
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Slug:       "sofa-vang-3-cho-ni",
			CategoryID: categoryIDs["sofa"],
			NameJSON: models.JSON{
				"vi": "Sofa văng 3 chỗ bọc nỉ",
				"en": "Three-Seat Fabric Sofa",
			},
			DescriptionJSON: models.JSON{
				"vi": "Sofa văng 3 chỗ, đệm mút D40, vải nỉ chống bám bụi.",
				"en": "Three-seat sofa with high-density foam cushions and dust-resistant fabric.",
			},
			Material:    "Khung gỗ dầu, nỉ",
			Dimensions:  "220 x 85 x 80 cm",
			PriceAmount: models.NewMoneyFromInt(14900000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Slug:       "sofa-don-da-bo",
			CategoryID: categoryIDs["sofa"],
			NameJSON: models.JSON{
				"vi": "Sofa đơn da bò",
				"en": "Leather Armchair",
			},
			DescriptionJSON: models.JSON{
				"vi": "Sofa đơn bọc da bò thật, chân thép sơn tĩnh điện.",
				"en": "Single armchair in full-grain cowhide on powder-coated steel legs.",
			},
			Material:        "Da bò, thép",
			Dimensions:      "85 x 90 x 95 cm",
			PriceAmount:     models.NewMoneyFromInt(9500000),
			SalePriceAmount: moneyPtr(8200000),
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800",
			},
			IsActive:  false,
			SortOrder: 2,
		},
	}

	for _, p := range products {
		if p.CategoryID == 0 {
			stdLog.Printf("skipping product %s: category missing", p.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", p.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", p.Slug, err)
			} else {
				stdLog.Printf("created product: %s", p.Slug)
			}
		} else {
			stdLog.Printf("product already exists: %s", p.Slug)
		}
	}

	stdLog.Println("seed finished")
}

func moneyPtr(amount int64) *models.Money {
	m := models.NewMoneyFromInt(amount)
	return &m
}
