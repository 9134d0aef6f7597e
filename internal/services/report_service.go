package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
)

type ReportFilters map[string]interface{}

type GenerateReportInput struct {
	StartDate *time.Time    `json:"start_date"`
	EndDate   *time.Time    `json:"end_date"`
	Filters   ReportFilters `json:"filters"`
}

type GeneratedReport struct {
	Report *models.Report `json:"report"`
	Data   interface{}    `json:"data"`
}

type DailySales struct {
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Items   int     `json:"items"`
}

type ReportService interface {
	ListReports(userID uint, page, limit int, reportType string) ([]models.Report, int64, error)
	GetReportByID(userID, id uint) (*models.Report, error)
	GenerateSalesReport(userID uint, input GenerateReportInput) (*GeneratedReport, error)
	GenerateInventoryReport(userID uint, filters ReportFilters) (*GeneratedReport, error)
	GenerateCustomerReport(userID uint, filters ReportFilters) (*GeneratedReport, error)
	DeleteReport(userID, id uint) error
}

type reportService struct {
	reportRepo   repository.ReportRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) ReportService {
	return &reportService{
		reportRepo:   reportRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (s *reportService) ListReports(userID uint, page, limit int, reportType string) ([]models.Report, int64, error) {
	return s.reportRepo.List(userID, page, limit, reportType)
}

func (s *reportService) GetReportByID(userID, id uint) (*models.Report, error) {
	return s.reportRepo.GetByID(userID, id)
}

// GenerateSalesReport aggregates non-cancelled orders in the requested
// range (default: the last month) into daily totals, top products and
// top customers, and persists the result as a report row.
func (s *reportService) GenerateSalesReport(userID uint, input GenerateReportInput) (*GeneratedReport, error) {
	end := time.Now()
	if input.EndDate != nil {
		end = *input.EndDate
	}
	start := end.AddDate(0, -1, 0)
	if input.StartDate != nil {
		start = *input.StartDate
	}

	orders, err := s.orderRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	totalItems := 0
	dailySales := make(map[string]*DailySales)
	type productAgg struct {
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}
	type customerAgg struct {
		Name    string  `json:"name"`
		Orders  int     `json:"orders"`
		Revenue float64 `json:"revenue"`
	}
	productSales := make(map[string]*productAgg)
	customerSales := make(map[string]*customerAgg)

	for _, order := range orders {
		totalRevenue += order.TotalAmount

		day := order.OrderDate.Format("2006-01-02")
		if dailySales[day] == nil {
			dailySales[day] = &DailySales{}
		}
		dailySales[day].Revenue += order.TotalAmount
		dailySales[day].Orders++

		for _, item := range order.OrderItems {
			totalItems += item.Quantity
			dailySales[day].Items += item.Quantity

			name := fmt.Sprintf("product %d", item.ProductID)
			if item.Product != nil {
				name = item.Product.Name
			}
			if productSales[name] == nil {
				productSales[name] = &productAgg{Name: name}
			}
			productSales[name].Quantity += item.Quantity
			productSales[name].Revenue += item.Total
		}

		if order.Customer != nil {
			if customerSales[order.Customer.Name] == nil {
				customerSales[order.Customer.Name] = &customerAgg{Name: order.Customer.Name}
			}
			customerSales[order.Customer.Name].Orders++
			customerSales[order.Customer.Name].Revenue += order.TotalAmount
		}
	}

	topProducts := make([]*productAgg, 0, len(productSales))
	for _, agg := range productSales {
		topProducts = append(topProducts, agg)
	}
	sort.Slice(topProducts, func(i, j int) bool { return topProducts[i].Revenue > topProducts[j].Revenue })
	if len(topProducts) > 10 {
		topProducts = topProducts[:10]
	}

	topCustomers := make([]*customerAgg, 0, len(customerSales))
	for _, agg := range customerSales {
		topCustomers = append(topCustomers, agg)
	}
	sort.Slice(topCustomers, func(i, j int) bool { return topCustomers[i].Revenue > topCustomers[j].Revenue })
	if len(topCustomers) > 10 {
		topCustomers = topCustomers[:10]
	}

	content := map[string]interface{}{
		"summary": map[string]interface{}{
			"total_revenue": totalRevenue,
			"total_orders":  len(orders),
			"total_items":   totalItems,
			"period":        map[string]time.Time{"start": start, "end": end},
		},
		"daily_sales":   dailySales,
		"top_products":  topProducts,
		"top_customers": topCustomers,
		"filters":       emptyIfNil(input.Filters),
	}

	title := fmt.Sprintf("Sales Report %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	return s.saveReport(userID, title, models.ReportSales, content, input.Filters)
}

// GenerateInventoryReport snapshots current stock levels: low and
// out-of-stock products, total stock value, and a per-category rollup.
func (s *reportService) GenerateInventoryReport(userID uint, filters ReportFilters) (*GeneratedReport, error) {
	products, err := s.productRepo.GetAllByStock(userID)
	if err != nil {
		return nil, err
	}

	type categoryAgg struct {
		Count      int     `json:"count"`
		TotalStock int     `json:"total_stock"`
		TotalValue float64 `json:"total_value"`
	}

	var lowStock, outOfStock []models.Product
	var totalValue float64
	categories := make(map[string]*categoryAgg)

	for _, product := range products {
		stock := 0
		if product.Stock != nil {
			stock = *product.Stock
		}
		price := 0.0
		if product.Price != nil {
			price = *product.Price
		}

		if product.Stock != nil && stock < lowStockThreshold {
			lowStock = append(lowStock, product)
		}
		if product.Stock != nil && stock == 0 {
			outOfStock = append(outOfStock, product)
		}
		totalValue += float64(stock) * price

		category := product.Category
		if category == "" {
			category = "Uncategorized"
		}
		if categories[category] == nil {
			categories[category] = &categoryAgg{}
		}
		categories[category].Count++
		categories[category].TotalStock += stock
		categories[category].TotalValue += float64(stock) * price
	}

	content := map[string]interface{}{
		"summary": map[string]interface{}{
			"total_products":        len(products),
			"low_stock_products":    len(lowStock),
			"out_of_stock_products": len(outOfStock),
			"total_stock_value":     totalValue,
		},
		"low_stock_products":    lowStock,
		"out_of_stock_products": outOfStock,
		"category_inventory":    categories,
		"filters":               emptyIfNil(filters),
	}

	title := fmt.Sprintf("Inventory Report %s", time.Now().Format("2006-01-02"))
	return s.saveReport(userID, title, models.ReportInventory, content, filters)
}

// GenerateCustomerReport segments customers by spend and geography.
func (s *reportService) GenerateCustomerReport(userID uint, filters ReportFilters) (*GeneratedReport, error) {
	customers, err := s.customerRepo.GetAll(userID)
	if err != nil {
		return nil, err
	}

	type geoAgg struct {
		Count   int     `json:"count"`
		Revenue float64 `json:"revenue"`
	}

	var totalRevenue float64
	var active, vip, withOrders int
	segments := map[string][]models.Customer{"vip": {}, "regular": {}, "new": {}}
	geography := make(map[string]*geoAgg)

	for _, customer := range customers {
		totalRevenue += customer.TotalSpent
		if customer.Status == string(models.CustomerActive) {
			active++
		}
		if customer.Status == string(models.CustomerVIP) {
			vip++
		}
		if customer.LastOrder != nil {
			withOrders++
		}

		switch {
		case customer.TotalSpent >= 1000:
			segments["vip"] = append(segments["vip"], customer)
		case customer.TotalSpent >= 100:
			segments["regular"] = append(segments["regular"], customer)
		default:
			segments["new"] = append(segments["new"], customer)
		}

		country := customer.Country
		if country == "" {
			country = "Unknown"
		}
		if geography[country] == nil {
			geography[country] = &geoAgg{}
		}
		geography[country].Count++
		geography[country].Revenue += customer.TotalSpent
	}

	averageOrderValue := 0.0
	if withOrders > 0 {
		averageOrderValue = totalRevenue / float64(withOrders)
	}

	top := customers
	if len(top) > 10 {
		top = top[:10]
	}

	content := map[string]interface{}{
		"summary": map[string]interface{}{
			"total_customers":     len(customers),
			"active_customers":    active,
			"vip_customers":       vip,
			"total_revenue":       totalRevenue,
			"average_order_value": averageOrderValue,
		},
		"customer_segments":       segments,
		"geographic_distribution": geography,
		"top_customers":           top,
		"filters":                 emptyIfNil(filters),
	}

	title := fmt.Sprintf("Customer Report %s", time.Now().Format("2006-01-02"))
	return s.saveReport(userID, title, models.ReportCustomer, content, filters)
}

func (s *reportService) DeleteReport(userID, id uint) error {
	report, err := s.reportRepo.GetByID(userID, id)
	if err != nil {
		return err
	}
	return s.reportRepo.Delete(report.ID)
}

func (s *reportService) saveReport(userID uint, title string, reportType models.ReportType, content map[string]interface{}, filters ReportFilters) (*GeneratedReport, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	filtersJSON, err := json.Marshal(emptyIfNil(filters))
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		UserID:      userID,
		Title:       title,
		Type:        string(reportType),
		Content:     string(contentJSON),
		Filters:     string(filtersJSON),
		GeneratedAt: time.Now(),
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}

	return &GeneratedReport{Report: report, Data: content}, nil
}

func emptyIfNil(filters ReportFilters) ReportFilters {
	if filters == nil {
		return ReportFilters{}
	}
	return filters
}
