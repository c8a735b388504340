package productrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"stockledger/internal/domain"
)

// SeedProducts devolve o catálogo inicial do back-office.
func SeedProducts() []domain.Product {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	won := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	return []domain.Product{
		{ID: "1", Code: "PRD001", Name: "라멜리어 페이스 워시 클렌징 젤", NameEn: "Lamelier Face Wash", Category: "클렌징", UnitPrice: won(35000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 15)},
		{ID: "2", Code: "PRD002", Name: "퍼펙퀵 이레이저 오일 [프리미엄 클렌징 오일]", NameEn: "PerfecQuick Eraser Oil [Premium Cleansing Oil]", Category: "클렌징", UnitPrice: won(42000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 10)},
		{ID: "3", Code: "PRD003", Name: "세라히알 비기닝 [프리미엄 세럼 토너]", NameEn: "Cera Hyal Beginning [Premium Serum Toner]", Category: "토너", UnitPrice: won(38000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 8)},
		{ID: "4", Code: "PRD004", Name: "호호바 쉴드 오일 프리미엄 페이스 오일", NameEn: "Jojoba Shield Oil [Premium Face Oil]", Category: "페이스 오일", UnitPrice: won(45000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 5)},
		{ID: "5", Code: "PRD005", Name: "비타렉트 C15 하이브리드 앰플", NameEn: "Vitarect C15 Hybrid Ampoule", Category: "앰플", UnitPrice: won(52000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 3)},
		{ID: "6", Code: "PRD006", Name: "락트제 세럼", NameEn: "LactZe Serum", Category: "세럼", UnitPrice: won(48000), Status: domain.ProductActive, CreatedAt: day(2024, 1, 1)},
		{ID: "7", Code: "PRD007", Name: "알로줄렌 로션 젤", NameEn: "Alo-Zelene Lotion Gel", Category: "로션", UnitPrice: won(32000), Status: domain.ProductActive, CreatedAt: day(2023, 12, 28)},
		{ID: "8", Code: "PRD008", Name: "토코맥스 20", NameEn: "TocoMax 20", Category: "트리트먼트", UnitPrice: won(55000), Status: domain.ProductActive, CreatedAt: day(2023, 12, 25)},
		{ID: "9", Code: "PRD009", Name: "리노 베리어락 크림", NameEn: "Reno BarrierLock Cream", Category: "크림", UnitPrice: won(39000), Status: domain.ProductActive, CreatedAt: day(2023, 12, 22)},
		{ID: "10", Code: "PRD010", Name: "스플래쉬 다이브 크림", NameEn: "Splash Dive Cream", Category: "크림", UnitPrice: won(41000), Status: domain.ProductActive, CreatedAt: day(2023, 12, 20)},
	}
}

// SeedStock devolve as posições iniciais de estoque para os produtos do catálogo.
func SeedStock(products []domain.Product, minThreshold int, restockedAt time.Time) []domain.StockRecord {
	// Quantidades fixas cobrindo os três estados derivados.
	quantities := []int{120, 45, 18, 0, 75, 30, 160, 9, 58, 210}

	records := make([]domain.StockRecord, 0, len(products))
	for i, p := range products {
		records = append(records, domain.StockRecord{
			ProductID:        p.ID,
			CurrentQuantity:  quantities[i%len(quantities)],
			MinimumThreshold: minThreshold,
			LastRestockedAt:  restockedAt,
		})
	}
	return records
}
