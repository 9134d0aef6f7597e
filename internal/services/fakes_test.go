package services

import (
	"sort"
	"time"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
	"dashboard_api/internal/repository"
)

// In-memory stand-ins for the repositories. The fake order repository
// mimics the store transaction: it applies stock decrements with the
// same guard the SQL uses and rolls nothing back on failure because it
// fails before mutating.

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]*models.Customer)}
}

func (f *fakeCustomerRepo) Create(c *models.Customer) error {
	if c.ID == 0 {
		c.ID = uint(len(f.customers) + 1)
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(userID, id uint) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil, apperrors.NotFoundf("customer %d", id)
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByIDWithOrders(userID, id uint) (*models.Customer, error) {
	return f.GetByID(userID, id)
}

func (f *fakeCustomerRepo) GetByEmail(userID uint, email string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.UserID == userID && c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(userID uint, page, limit int, search, status string) ([]models.Customer, int64, error) {
	all, _ := f.GetAll(userID)
	return all, int64(len(all)), nil
}

func (f *fakeCustomerRepo) GetAll(userID uint) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.customers {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *models.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(id uint) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) Count(userID uint) (int64, error) {
	all, _ := f.GetAll(userID)
	return int64(len(all)), nil
}

func (f *fakeCustomerRepo) CountByStatus(userID uint, status string) (int64, error) {
	var n int64
	for _, c := range f.customers {
		if c.UserID == userID && c.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeCustomerRepo) SumTotalSpent(userID uint) (float64, error) {
	var sum float64
	for _, c := range f.customers {
		if c.UserID == userID {
			sum += c.TotalSpent
		}
	}
	return sum, nil
}

func (f *fakeCustomerRepo) TopBySpent(userID uint, limit int) ([]repository.TopCustomerRow, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[uint]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*models.Product)}
}

func (f *fakeProductRepo) Create(p *models.Product) error {
	if p.ID == 0 {
		p.ID = uint(len(f.products) + 1)
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(userID, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok || p.UserID != userID {
		return nil, apperrors.NotFoundf("product %d", id)
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetAll(userID uint) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetAllByStock(userID uint) ([]models.Product, error) {
	return f.GetAll(userID)
}

func (f *fakeProductRepo) Update(p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count(userID uint) (int64, error) {
	all, _ := f.GetAll(userID)
	return int64(len(all)), nil
}

type fakeOrderRepo struct {
	orders    map[uint]*models.Order
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	nextID    uint
}

func newFakeOrderRepo(customers *fakeCustomerRepo, products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[uint]*models.Order),
		customers: customers,
		products:  products,
		nextID:    1,
	}
}

func (f *fakeOrderRepo) PlaceOrder(order *models.Order, items []models.OrderItem) error {
	// stock guard first, nothing mutated on failure
	for _, item := range items {
		p := f.products.products[item.ProductID]
		if p == nil {
			return apperrors.NotFoundf("product %d", item.ProductID)
		}
		if p.Stock != nil && *p.Stock < item.Quantity {
			return &apperrors.InsufficientStockError{
				ProductName: p.Name,
				Requested:   item.Quantity,
				Available:   *p.Stock,
			}
		}
	}

	order.ID = f.nextID
	f.nextID++
	for i := range items {
		items[i].OrderID = order.ID
	}

	for _, item := range items {
		p := f.products.products[item.ProductID]
		if p.Stock != nil {
			remaining := *p.Stock - item.Quantity
			p.Stock = &remaining
		}
	}

	c := f.customers.customers[order.CustomerID]
	c.TotalSpent += order.TotalAmount
	orderDate := order.OrderDate
	c.LastOrder = &orderDate

	stored := *order
	stored.OrderItems = append([]models.OrderItem(nil), items...)
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) DeleteWithRestock(order *models.Order) error {
	for _, item := range order.OrderItems {
		p := f.products.products[item.ProductID]
		if p != nil && p.Stock != nil {
			restored := *p.Stock + item.Quantity
			p.Stock = &restored
		}
	}
	c := f.customers.customers[order.CustomerID]
	if c != nil {
		c.TotalSpent -= order.TotalAmount
	}
	delete(f.orders, order.ID)
	return nil
}

func (f *fakeOrderRepo) GetByID(userID, id uint) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.UserID != userID {
		return nil, apperrors.NotFoundf("order %d", id)
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOrderRepo) List(userID uint, page, limit int, status string, customerID uint) ([]models.Order, int64, error) {
	all, _ := f.GetAllByUser(userID)
	return all, int64(len(all)), nil
}

func (f *fakeOrderRepo) GetByDateRange(userID uint, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID && !o.OrderDate.Before(start) && !o.OrderDate.After(end) &&
			o.Status != string(models.OrderCancelled) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetAllByUser(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Count(userID uint) (int64, error) {
	all, _ := f.GetAllByUser(userID)
	return int64(len(all)), nil
}

func (f *fakeOrderRepo) CountByStatus(userID uint, status string) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.UserID == userID && o.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) SumTotalAmount(userID uint) (float64, error) {
	var sum float64
	for _, o := range f.orders {
		if o.UserID == userID {
			sum += o.TotalAmount
		}
	}
	return sum, nil
}

func (f *fakeOrderRepo) TopProducts(userID uint, limit int) ([]repository.TopProductRow, error) {
	return nil, nil
}

func (f *fakeOrderRepo) CountByCustomer(customerID uint) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	n.ID = uint(len(f.notifications) + 1)
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationRepo) GetByID(userID, id uint) (*models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, apperrors.NotFoundf("notification %d", id)
}

func (f *fakeNotificationRepo) List(userID uint, page, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) MarkRead(userID, id uint) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(userID uint) error {
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(id uint) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) CountUnread(userID uint) (int64, error) {
	var n int64
	for _, notif := range f.notifications {
		if notif.UserID == userID && !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) Count(userID uint) (int64, error) {
	var n int64
	for _, notif := range f.notifications {
		if notif.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeActivityRepo struct {
	activities map[uint]*models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uint]*models.Activity)}
}

func (f *fakeActivityRepo) Create(a *models.Activity) error {
	if a.ID == 0 {
		a.ID = uint(len(f.activities) + 1)
	}
	f.activities[a.ID] = a
	return nil
}

func (f *fakeActivityRepo) GetByID(userID, id uint) (*models.Activity, error) {
	a, ok := f.activities[id]
	if !ok || a.UserID != userID {
		return nil, apperrors.NotFoundf("activity %d", id)
	}
	return a, nil
}

func (f *fakeActivityRepo) GetRecent(userID uint, limit int) ([]models.Activity, error) {
	all, _ := f.GetAll(userID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeActivityRepo) GetAll(userID uint) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range f.activities {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) Update(a *models.Activity) error {
	f.activities[a.ID] = a
	return nil
}

func (f *fakeActivityRepo) Delete(id uint) error {
	delete(f.activities, id)
	return nil
}

type fakeSettingsRepo struct {
	settings map[uint]*models.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uint]*models.UserSettings)}
}

func (f *fakeSettingsRepo) GetByUserID(userID uint) (*models.UserSettings, error) {
	return f.settings[userID], nil
}

func (f *fakeSettingsRepo) Create(s *models.UserSettings) error {
	if s.ID == 0 {
		s.ID = uint(len(f.settings) + 1)
	}
	f.settings[s.UserID] = s
	return nil
}

func (f *fakeSettingsRepo) Update(s *models.UserSettings) error {
	f.settings[s.UserID] = s
	return nil
}

type fakeReportRepo struct {
	reports map[uint]*models.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint]*models.Report)}
}

func (f *fakeReportRepo) Create(r *models.Report) error {
	if r.ID == 0 {
		r.ID = uint(len(f.reports) + 1)
	}
	f.reports[r.ID] = r
	return nil
}

func (f *fakeReportRepo) GetByID(userID, id uint) (*models.Report, error) {
	r, ok := f.reports[id]
	if !ok || r.UserID != userID {
		return nil, apperrors.NotFoundf("report %d", id)
	}
	return r, nil
}

func (f *fakeReportRepo) List(userID uint, page, limit int, reportType string) ([]models.Report, int64, error) {
	var out []models.Report
	for _, r := range f.reports {
		if r.UserID != userID {
			continue
		}
		if reportType != "" && r.Type != reportType {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReportRepo) Delete(id uint) error {
	delete(f.reports, id)
	return nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if u.ID == 0 {
		u.ID = uint(len(f.users) + 1)
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFoundf("user %d", id)
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = u
	return nil
}
