// Package memory provides map-backed implementations of the repository
// contracts. A single mutex serializes transactions the way the database's
// row locks do, and failed transaction closures roll the store back to its
// pre-transaction state. Used by tests and by anything that needs the
// storage semantics without a running database.
package memory

import (
	"sync"

	"walletdesk/internal/domain"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories"
)

// Store holds every entity behind one lock.
type Store struct {
	mu sync.Mutex

	customers map[uint]*models.Customer
	employees map[uint]*models.Employee
	wallets   map[uint]*models.Wallet
	txns      map[uint]*models.Transaction

	nextCustomerID uint
	nextEmployeeID uint
	nextWalletID   uint
	nextTxnID      uint
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[uint]*models.Customer),
		employees: make(map[uint]*models.Employee),
		wallets:   make(map[uint]*models.Wallet),
		txns:      make(map[uint]*models.Transaction),
	}
}

// Customers returns the customer repository view of the store.
func (s *Store) Customers() repositories.CustomerRepository { return &customerRepo{s} }

// Employees returns the employee repository view of the store.
func (s *Store) Employees() repositories.EmployeeRepository { return &employeeRepo{s} }

// Wallets returns the wallet repository view of the store.
func (s *Store) Wallets() repositories.WalletRepository { return &walletRepo{store: s} }

// Transactions returns the transaction repository view of the store.
func (s *Store) Transactions() repositories.TransactionRepository {
	return &transactionRepo{store: s}
}

func cloneWallet(w *models.Wallet) *models.Wallet {
	c := *w
	return &c
}

func cloneTxn(t *models.Transaction) *models.Transaction {
	c := *t
	return &c
}

func cloneCustomer(c *models.Customer) *models.Customer {
	v := *c
	return &v
}

func cloneEmployee(e *models.Employee) *models.Employee {
	v := *e
	return &v
}

// snapshot captures wallet and transaction state so a failed transaction
// closure can be undone.
func (s *Store) snapshot() (map[uint]*models.Wallet, map[uint]*models.Transaction) {
	wallets := make(map[uint]*models.Wallet, len(s.wallets))
	for id, w := range s.wallets {
		wallets[id] = cloneWallet(w)
	}
	txns := make(map[uint]*models.Transaction, len(s.txns))
	for id, t := range s.txns {
		txns[id] = cloneTxn(t)
	}
	return wallets, txns
}

func (s *Store) restore(wallets map[uint]*models.Wallet, txns map[uint]*models.Transaction) {
	s.wallets = wallets
	s.txns = txns
}

// --- wallet repository ---

type walletRepo struct {
	store *Store
	// inTx skips locking; the transaction wrapper already holds the mutex.
	inTx bool
}

func (r *walletRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *walletRepo) Create(wallet *models.Wallet) error {
	defer r.lock()()
	r.store.nextWalletID++
	wallet.ID = r.store.nextWalletID
	r.store.wallets[wallet.ID] = cloneWallet(wallet)
	return nil
}

func (r *walletRepo) GetByID(id uint) (*models.Wallet, error) {
	defer r.lock()()
	w, ok := r.store.wallets[id]
	if !ok {
		return nil, domain.NewNotFound("wallet", id)
	}
	return cloneWallet(w), nil
}

func (r *walletRepo) GetByIDForUpdate(id uint) (*models.Wallet, error) {
	return r.GetByID(id)
}

func (r *walletRepo) GetByCustomerID(customerID uint) ([]*models.Wallet, error) {
	return r.filter(func(w *models.Wallet) bool { return w.CustomerID == customerID })
}

func (r *walletRepo) GetByCustomerIDAndCurrency(customerID uint, currency models.Currency) ([]*models.Wallet, error) {
	return r.filter(func(w *models.Wallet) bool {
		return w.CustomerID == customerID && w.Currency == currency
	})
}

func (r *walletRepo) GetByCurrency(currency models.Currency) ([]*models.Wallet, error) {
	return r.filter(func(w *models.Wallet) bool { return w.Currency == currency })
}

func (r *walletRepo) GetByActiveForShopping(active bool) ([]*models.Wallet, error) {
	return r.filter(func(w *models.Wallet) bool { return w.ActiveForShopping == active })
}

func (r *walletRepo) GetByActiveForWithdraw(active bool) ([]*models.Wallet, error) {
	return r.filter(func(w *models.Wallet) bool { return w.ActiveForWithdraw == active })
}

func (r *walletRepo) GetAll() ([]*models.Wallet, error) {
	return r.filter(func(*models.Wallet) bool { return true })
}

func (r *walletRepo) filter(keep func(*models.Wallet) bool) ([]*models.Wallet, error) {
	defer r.lock()()
	var out []*models.Wallet
	for _, w := range r.store.wallets {
		if keep(w) {
			out = append(out, cloneWallet(w))
		}
	}
	return out, nil
}

func (r *walletRepo) Update(wallet *models.Wallet) error {
	defer r.lock()()
	if _, ok := r.store.wallets[wallet.ID]; !ok {
		return domain.NewNotFound("wallet", wallet.ID)
	}
	r.store.wallets[wallet.ID] = cloneWallet(wallet)
	return nil
}

func (r *walletRepo) Delete(id uint) error {
	defer r.lock()()
	if _, ok := r.store.wallets[id]; !ok {
		return domain.NewNotFound("wallet", id)
	}
	delete(r.store.wallets, id)
	return nil
}

func (r *walletRepo) Exists(id uint) (bool, error) {
	defer r.lock()()
	_, ok := r.store.wallets[id]
	return ok, nil
}

func (r *walletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallets, txns := r.store.snapshot()
	if err := fn(&walletRepo{store: r.store, inTx: true}); err != nil {
		r.store.restore(wallets, txns)
		return err
	}
	return nil
}

// --- transaction repository ---

type transactionRepo struct {
	store *Store
	inTx  bool
}

func (r *transactionRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *transactionRepo) Create(txn *models.Transaction) error {
	defer r.lock()()
	r.store.nextTxnID++
	txn.ID = r.store.nextTxnID
	r.store.txns[txn.ID] = cloneTxn(txn)
	return nil
}

func (r *transactionRepo) GetByID(id uint) (*models.Transaction, error) {
	defer r.lock()()
	t, ok := r.store.txns[id]
	if !ok {
		return nil, domain.NewNotFound("transaction", id)
	}
	return cloneTxn(t), nil
}

func (r *transactionRepo) GetByIDForUpdate(id uint) (*models.Transaction, error) {
	return r.GetByID(id)
}

func (r *transactionRepo) GetByWalletID(walletID uint) ([]*models.Transaction, error) {
	return r.filter(func(t *models.Transaction) bool { return t.WalletID == walletID })
}

func (r *transactionRepo) GetByWalletIDAndStatus(walletID uint, status models.TransactionStatus) ([]*models.Transaction, error) {
	return r.filter(func(t *models.Transaction) bool {
		return t.WalletID == walletID && t.Status == status
	})
}

func (r *transactionRepo) GetByWalletIDAndType(walletID uint, txType models.TransactionType) ([]*models.Transaction, error) {
	return r.filter(func(t *models.Transaction) bool {
		return t.WalletID == walletID && t.Type == txType
	})
}

func (r *transactionRepo) GetByStatus(status models.TransactionStatus) ([]*models.Transaction, error) {
	return r.filter(func(t *models.Transaction) bool { return t.Status == status })
}

func (r *transactionRepo) GetByType(txType models.TransactionType) ([]*models.Transaction, error) {
	return r.filter(func(t *models.Transaction) bool { return t.Type == txType })
}

func (r *transactionRepo) GetByCustomerID(customerID uint) ([]*models.Transaction, error) {
	defer r.lock()()
	owned := make(map[uint]bool)
	for id, w := range r.store.wallets {
		if w.CustomerID == customerID {
			owned[id] = true
		}
	}
	var out []*models.Transaction
	for _, t := range r.store.txns {
		if owned[t.WalletID] {
			out = append(out, cloneTxn(t))
		}
	}
	return out, nil
}

func (r *transactionRepo) GetAll() ([]*models.Transaction, error) {
	return r.filter(func(*models.Transaction) bool { return true })
}

func (r *transactionRepo) filter(keep func(*models.Transaction) bool) ([]*models.Transaction, error) {
	defer r.lock()()
	var out []*models.Transaction
	for _, t := range r.store.txns {
		if keep(t) {
			out = append(out, cloneTxn(t))
		}
	}
	return out, nil
}

func (r *transactionRepo) Update(txn *models.Transaction) error {
	defer r.lock()()
	if _, ok := r.store.txns[txn.ID]; !ok {
		return domain.NewNotFound("transaction", txn.ID)
	}
	r.store.txns[txn.ID] = cloneTxn(txn)
	return nil
}

func (r *transactionRepo) ExecuteInTransaction(fn func(repositories.TransactionRepository, repositories.WalletRepository) error) error {
	if r.inTx {
		return fn(r, &walletRepo{store: r.store, inTx: true})
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wallets, txns := r.store.snapshot()
	err := fn(
		&transactionRepo{store: r.store, inTx: true},
		&walletRepo{store: r.store, inTx: true},
	)
	if err != nil {
		r.store.restore(wallets, txns)
		return err
	}
	return nil
}

// --- customer repository ---

type customerRepo struct {
	store *Store
}

func (r *customerRepo) Create(customer *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.NationalID == customer.NationalID {
			return domain.NewDuplicateIdentifier("national id", customer.NationalID)
		}
	}
	r.store.nextCustomerID++
	customer.ID = r.store.nextCustomerID
	r.store.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (r *customerRepo) GetByID(id uint) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.customers[id]
	if !ok {
		return nil, domain.NewNotFound("customer", id)
	}
	return cloneCustomer(c), nil
}

func (r *customerRepo) GetByNationalID(nationalID string) (*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.NationalID == nationalID {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.NewNotFound("customer", 0)
}

func (r *customerRepo) GetAll() ([]*models.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Customer
	for _, c := range r.store.customers {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func (r *customerRepo) Update(customer *models.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[customer.ID]; !ok {
		return domain.NewNotFound("customer", customer.ID)
	}
	r.store.customers[customer.ID] = cloneCustomer(customer)
	return nil
}

func (r *customerRepo) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[id]; !ok {
		return domain.NewNotFound("customer", id)
	}
	delete(r.store.customers, id)
	return nil
}

func (r *customerRepo) Exists(id uint) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.customers[id]
	return ok, nil
}

func (r *customerRepo) ExistsByNationalID(nationalID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.customers {
		if c.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// --- employee repository ---

type employeeRepo struct {
	store *Store
}

func (r *employeeRepo) Create(employee *models.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees {
		if e.EmployeeCode == employee.EmployeeCode {
			return domain.NewDuplicateIdentifier("employee code", employee.EmployeeCode)
		}
	}
	r.store.nextEmployeeID++
	employee.ID = r.store.nextEmployeeID
	r.store.employees[employee.ID] = cloneEmployee(employee)
	return nil
}

func (r *employeeRepo) GetByID(id uint) (*models.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.employees[id]
	if !ok {
		return nil, domain.NewNotFound("employee", id)
	}
	return cloneEmployee(e), nil
}

func (r *employeeRepo) GetByEmployeeCode(code string) (*models.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees {
		if e.EmployeeCode == code {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.NewNotFound("employee", 0)
}

func (r *employeeRepo) GetByRole(role models.EmployeeRole) ([]*models.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Employee
	for _, e := range r.store.employees {
		if e.Role == role {
			out = append(out, cloneEmployee(e))
		}
	}
	return out, nil
}

func (r *employeeRepo) GetAll() ([]*models.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*models.Employee
	for _, e := range r.store.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *employeeRepo) Update(employee *models.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.employees[employee.ID]; !ok {
		return domain.NewNotFound("employee", employee.ID)
	}
	r.store.employees[employee.ID] = cloneEmployee(employee)
	return nil
}

func (r *employeeRepo) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.employees[id]; !ok {
		return domain.NewNotFound("employee", id)
	}
	delete(r.store.employees, id)
	return nil
}

func (r *employeeRepo) ExistsByEmployeeCode(code string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees {
		if e.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}
