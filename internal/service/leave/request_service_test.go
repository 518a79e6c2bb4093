package leave

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/attendsys/attendance-backend-go/internal/domain/auth"
	"github.com/attendsys/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== In-memory fakes =====
//
// The fakes reproduce the storage guarantees the service relies on: the
// conditional status flip, the guarded balance deduction, and transactional
// rollback. The tx manager serializes transactions and restores a snapshot
// when the callback fails, which is what row locks plus rollback give us in
// the real database.

type fakeState struct {
	mu       sync.Mutex
	types    map[string]leave.LeaveType
	balances map[string]*leave.LeaveBalance // key employeeID|leaveTypeID
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newFakeState() *fakeState {
	return &fakeState{
		types:    make(map[string]leave.LeaveType),
		balances: make(map[string]*leave.LeaveBalance),
		requests: make(map[string]*leave.LeaveRequest),
	}
}

func (s *fakeState) id() string {
	s.nextID++
	return "id-" + strconv.Itoa(s.nextID)
}

func balanceKey(employeeID, leaveTypeID string) string {
	return employeeID + "|" + leaveTypeID
}

type txMarker struct{}

// lock guards repo access, except inside a transaction where the tx manager
// already holds the mutex.
func (s *fakeState) lock(ctx context.Context) func() {
	if ctx.Value(txMarker{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *fakeState) snapshot() *fakeState {
	snap := newFakeState()
	snap.nextID = s.nextID
	for k, v := range s.types {
		snap.types[k] = v
	}
	for k, v := range s.balances {
		b := *v
		snap.balances[k] = &b
	}
	for k, v := range s.requests {
		r := *v
		snap.requests[k] = &r
	}
	return snap
}

func (s *fakeState) restore(snap *fakeState) {
	s.types = snap.types
	s.balances = snap.balances
	s.requests = snap.requests
	s.nextID = snap.nextID
}

type fakeTxManager struct {
	state *fakeState
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	snap := m.state.snapshot()
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		m.state.restore(snap)
		return err
	}
	return nil
}

type fakeTypeRepo struct{ state *fakeState }

func (r *fakeTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	defer r.state.lock(ctx)()
	lt.ID = r.state.id()
	lt.CreatedAt = time.Now()
	r.state.types[lt.ID] = lt
	return lt, nil
}

func (r *fakeTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	defer r.state.lock(ctx)()
	lt, ok := r.state.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r *fakeTypeRepo) GetAll(ctx context.Context) ([]leave.LeaveType, error) {
	defer r.state.lock(ctx)()
	out := make([]leave.LeaveType, 0, len(r.state.types))
	for _, lt := range r.state.types {
		out = append(out, lt)
	}
	return out, nil
}

func (r *fakeTypeRepo) Update(ctx context.Context, lt leave.LeaveType) error {
	defer r.state.lock(ctx)()
	if _, ok := r.state.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	r.state.types[lt.ID] = lt
	return nil
}

func (r *fakeTypeRepo) Delete(ctx context.Context, id string) error {
	defer r.state.lock(ctx)()
	if _, ok := r.state.types[id]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	delete(r.state.types, id)
	return nil
}

type fakeBalanceRepo struct{ state *fakeState }

func (r *fakeBalanceRepo) GetByEmployeeAndType(ctx context.Context, employeeID, leaveTypeID string) (leave.LeaveBalance, error) {
	defer r.state.lock(ctx)()
	b, ok := r.state.balances[balanceKey(employeeID, leaveTypeID)]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return *b, nil
}

func (r *fakeBalanceRepo) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	defer r.state.lock(ctx)()
	var out []leave.LeaveBalance
	for _, b := range r.state.balances {
		if b.EmployeeID == employeeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBalanceRepo) GetAll(ctx context.Context) ([]leave.LeaveBalance, error) {
	defer r.state.lock(ctx)()
	var out []leave.LeaveBalance
	for _, b := range r.state.balances {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBalanceRepo) Provision(ctx context.Context, employeeID, leaveTypeID string, defaultDays float64) (leave.LeaveBalance, error) {
	defer r.state.lock(ctx)()
	key := balanceKey(employeeID, leaveTypeID)
	if b, ok := r.state.balances[key]; ok {
		return *b, nil
	}
	b := &leave.LeaveBalance{
		ID:            r.state.id(),
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		RemainingDays: defaultDays,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	r.state.balances[key] = b
	return *b, nil
}

func (r *fakeBalanceRepo) Deduct(ctx context.Context, employeeID, leaveTypeID string, days float64) error {
	defer r.state.lock(ctx)()
	b, ok := r.state.balances[balanceKey(employeeID, leaveTypeID)]
	if !ok || b.RemainingDays < days {
		return leave.ErrInsufficientBalance
	}
	b.RemainingDays -= days
	b.UpdatedAt = time.Now()
	return nil
}

type fakeRequestRepo struct{ state *fakeState }

func (r *fakeRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (string, error) {
	defer r.state.lock(ctx)()
	request.ID = r.state.id()
	request.CreatedAt = time.Now()
	r.state.requests[request.ID] = &request
	return request.ID, nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	defer r.state.lock(ctx)()
	req, ok := r.state.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *req, nil
}

func (r *fakeRequestRepo) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	defer r.state.lock(ctx)()
	var out []leave.LeaveRequest
	for _, req := range r.state.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) GetAllWithDetails(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	defer r.state.lock(ctx)()
	return r.details(false), nil
}

func (r *fakeRequestRepo) GetPendingWithDetails(ctx context.Context) ([]leave.LeaveRequestDetails, error) {
	defer r.state.lock(ctx)()
	return r.details(true), nil
}

func (r *fakeRequestRepo) details(pendingOnly bool) []leave.LeaveRequestDetails {
	var out []leave.LeaveRequestDetails
	for _, req := range r.state.requests {
		if pendingOnly && req.Status != leave.LeaveRequestStatusPending {
			continue
		}
		out = append(out, leave.LeaveRequestDetails{
			ID:          req.ID,
			EmployeeID:  req.EmployeeID,
			LeaveTypeID: req.LeaveTypeID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Reason:      req.Reason,
			Status:      req.Status,
		})
	}
	return out
}

func (r *fakeRequestRepo) UpdateStatusIfPending(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy string, notes *string) error {
	defer r.state.lock(ctx)()
	req, ok := r.state.requests[id]
	if !ok || req.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	now := time.Now()
	req.Status = status
	req.ReviewedBy = &reviewedBy
	req.ReviewedAt = &now
	req.ReviewNotes = notes
	return nil
}

func (r *fakeRequestRepo) DeleteIfPending(ctx context.Context, id string) error {
	defer r.state.lock(ctx)()
	req, ok := r.state.requests[id]
	if !ok || req.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	delete(r.state.requests, id)
	return nil
}

type enqueued struct {
	EmployeeID string
	Title      string
	Message    string
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []enqueued
}

func (n *fakeNotifier) Enqueue(ctx context.Context, employeeID, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, enqueued{EmployeeID: employeeID, Title: title, Message: message})
}

func (n *fakeNotifier) sent() []enqueued {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]enqueued(nil), n.calls...)
}

// ===== Test harness =====

type fixture struct {
	state    *fakeState
	service  *RequestService
	notifier *fakeNotifier
}

func newFixture() *fixture {
	state := newFakeState()
	notifier := &fakeNotifier{}
	service := NewRequestService(
		&fakeTxManager{state: state},
		&fakeTypeRepo{state: state},
		&fakeBalanceRepo{state: state},
		&fakeRequestRepo{state: state},
		notifier,
		20,
	)
	return &fixture{state: state, service: service, notifier: notifier}
}

func (f *fixture) addType(maxDays int) leave.LeaveType {
	lt := leave.LeaveType{ID: f.state.id(), TypeName: "Annual Leave", IsPaid: true, MaxDaysPerYear: maxDays}
	f.state.types[lt.ID] = lt
	return lt
}

func (f *fixture) setBalance(employeeID, leaveTypeID string, days float64) {
	f.state.balances[balanceKey(employeeID, leaveTypeID)] = &leave.LeaveBalance{
		ID:            f.state.id(),
		EmployeeID:    employeeID,
		LeaveTypeID:   leaveTypeID,
		RemainingDays: days,
	}
}

func (f *fixture) balance(employeeID, leaveTypeID string) float64 {
	return f.state.balances[balanceKey(employeeID, leaveTypeID)].RemainingDays
}

func (f *fixture) addPendingRequest(employeeID, leaveTypeID string, start, end string) string {
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	id := f.state.id()
	f.state.requests[id] = &leave.LeaveRequest{
		ID:          id,
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      leave.LeaveRequestStatusPending,
	}
	return id
}

var (
	alice = auth.Context{EmployeeID: "emp-alice"}
	admin = auth.Context{EmployeeID: "emp-admin", IsAdmin: true}
)

// ===== CreateRequest =====

func TestRequestService_CreateRequest_Success(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)

	created, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
		Reason:      "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, created.Status)
	assert.Equal(t, alice.EmployeeID, created.EmployeeID)
	// No deduction until approval
	assert.Equal(t, 10.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_CreateRequest_SingleDay(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 0.5)

	// A one-day request needs a full day even with start == end
	_, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-02",
	})

	var insufficient *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0.5, insufficient.Available)
	assert.Equal(t, 1.0, insufficient.Requested)
}

func TestRequestService_CreateRequest_InsufficientBalance(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 2)

	_, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-06",
	})

	require.ErrorIs(t, err, leave.ErrInsufficientBalance)
	var insufficient *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2.0, insufficient.Available)
	assert.Equal(t, 5.0, insufficient.Requested)
	// Nothing stored
	assert.Empty(t, f.state.requests)
}

func TestRequestService_CreateRequest_ProvisionsBalanceFromTypeCap(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)

	created, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, created.Status)
	assert.Equal(t, 12.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_CreateRequest_ProvisionsDefaultWhenTypeHasNoCap(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(0)

	_, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_CreateRequest_UnknownLeaveType(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: "nope",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
	})

	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestRequestService_CreateRequest_InvalidDates(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)

	_, err := f.service.CreateRequest(context.Background(), alice, leave.CreateLeaveRequestRequest{
		LeaveTypeID: lt.ID,
		StartDate:   "2025-06-10",
		EndDate:     "2025-06-02",
	})

	require.Error(t, err)
	assert.Empty(t, f.state.requests)
}

// ===== Review =====

func TestRequestService_Review_ApproveDeductsAndNotifies(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	notes := "enjoy"
	reviewed, err := f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status:      string(leave.LeaveRequestStatusApproved),
		ReviewNotes: &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.EmployeeID, *reviewed.ReviewedBy)
	assert.Equal(t, 7.0, f.balance(alice.EmployeeID, lt.ID))

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, alice.EmployeeID, sent[0].EmployeeID)
	assert.Equal(t, "Leave request approved", sent[0].Title)
	assert.Contains(t, sent[0].Message, "2025-06-02")
	assert.Contains(t, sent[0].Message, "enjoy")
}

func TestRequestService_Review_RejectKeepsBalance(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	reviewed, err := f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusRejected),
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, reviewed.Status)
	assert.Equal(t, 10.0, f.balance(alice.EmployeeID, lt.ID))

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Leave request rejected", sent[0].Title)
}

func TestRequestService_Review_InvalidDecision(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.service.Review(context.Background(), admin, "whatever", leave.ReviewLeaveRequestRequest{
		Status: "Maybe",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestRequestService_Review_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	_, err := f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)

	_, err = f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	// Deducted exactly once
	assert.Equal(t, 7.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_Review_ApproveRollsBackWhenBalanceDropped(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	// Balance dropped below the requested days after submission
	f.setBalance(alice.EmployeeID, lt.ID, 2)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-06")

	_, err := f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusApproved),
	})

	var insufficient *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2.0, insufficient.Available)
	assert.Equal(t, 5.0, insufficient.Requested)

	// The status flip rolled back with the failed deduction
	stored, getErr := f.service.GetRequest(context.Background(), admin, reqID)
	require.NoError(t, getErr)
	assert.Equal(t, leave.LeaveRequestStatusPending, stored.Status)
	assert.Equal(t, 2.0, f.balance(alice.EmployeeID, lt.ID))
	assert.Empty(t, f.notifier.sent())
}

func TestRequestService_Review_ConcurrentApprovalsSpendOnce(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 5)

	// Two pending 3-day requests against a 5-day balance
	first := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")
	second := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-07-07", "2025-07-09")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []string{first, second} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, results[i] = f.service.Review(context.Background(), admin, id, leave.ReviewLeaveRequestRequest{
				Status: string(leave.LeaveRequestStatusApproved),
			})
		}(i, id)
	}
	wg.Wait()

	var approved, failed int
	for _, err := range results {
		if err == nil {
			approved++
		} else if errors.Is(err, leave.ErrInsufficientBalance) {
			failed++
		}
	}

	assert.Equal(t, 1, approved)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_Review_ConcurrentDoubleReview(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
				Status: string(leave.LeaveRequestStatusApproved),
			})
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		if err == nil {
			succeeded++
		} else if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Equal(t, 7.0, f.balance(alice.EmployeeID, lt.ID))
}

func TestRequestService_Review_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.service.Review(context.Background(), admin, "missing", leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusApproved),
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// ===== CancelRequest =====

func TestRequestService_CancelRequest_OwnerCancelsPending(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	err := f.service.CancelRequest(context.Background(), alice, reqID)

	require.NoError(t, err)
	assert.Empty(t, f.state.requests)
}

func TestRequestService_CancelRequest_NotOwner(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	bob := auth.Context{EmployeeID: "emp-bob"}
	err := f.service.CancelRequest(context.Background(), bob, reqID)

	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
	assert.Len(t, f.state.requests, 1)
}

func TestRequestService_CancelRequest_AlreadyReviewed(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	f.setBalance(alice.EmployeeID, lt.ID, 10)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	_, err := f.service.Review(context.Background(), admin, reqID, leave.ReviewLeaveRequestRequest{
		Status: string(leave.LeaveRequestStatusApproved),
	})
	require.NoError(t, err)

	err = f.service.CancelRequest(context.Background(), alice, reqID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestRequestService_CancelRequest_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture()

	err := f.service.CancelRequest(context.Background(), alice, "missing")

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// ===== GetRequest visibility =====

func TestRequestService_GetRequest_HidesOthersFromNonAdmins(t *testing.T) {
	t.Parallel()
	f := newFixture()
	lt := f.addType(12)
	reqID := f.addPendingRequest(alice.EmployeeID, lt.ID, "2025-06-02", "2025-06-04")

	bob := auth.Context{EmployeeID: "emp-bob"}
	_, err := f.service.GetRequest(context.Background(), bob, reqID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	got, err := f.service.GetRequest(context.Background(), admin, reqID)
	require.NoError(t, err)
	assert.Equal(t, reqID, got.ID)
}
