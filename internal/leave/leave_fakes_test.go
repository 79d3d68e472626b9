package leave_test

import (
	"context"
	"database/sql"
	"sort"

	"go-leave/internal/leave"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memLeaveRepo keeps requests and logs in memory and mimics the column rules of
// the gorm repository: Update never touches status.
type memLeaveRepo struct {
	leaves map[uuid.UUID]leave.LeaveRequest
	logs   []leave.LeaveLog
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{leaves: map[uuid.UUID]leave.LeaveRequest{}}
}

func (r *memLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return r }

func (r *memLeaveRepo) Create(ctx context.Context, l *leave.LeaveRequest) error {
	r.leaves[l.ID] = *l
	return nil
}

func (r *memLeaveRepo) Update(ctx context.Context, l *leave.LeaveRequest) error {
	stored, ok := r.leaves[l.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	status := stored.Status
	stored = *l
	stored.Status = status
	r.leaves[l.ID] = stored
	return nil
}

func (r *memLeaveRepo) find(id string) (*leave.LeaveRequest, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	l, ok := r.leaves[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (r *memLeaveRepo) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return r.find(id)
}

func (r *memLeaveRepo) FindByIDForUpdate(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return r.find(id)
}

func (r *memLeaveRepo) FindAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range r.leaves {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != "" && l.EmployeeID.String() != filter.EmployeeID {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memLeaveRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	l, ok := r.leaves[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	r.leaves[id] = l
	return nil
}

func (r *memLeaveRepo) CreateLog(ctx context.Context, log *leave.LeaveLog) error {
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memLeaveRepo) FindLogs(ctx context.Context, leaveID string) ([]leave.LeaveLog, error) {
	var out []leave.LeaveLog
	for _, lg := range r.logs {
		if lg.LeaveID.String() == leaveID {
			out = append(out, lg)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) FindAllLogs(ctx context.Context) ([]leave.LeaveLog, error) {
	out := make([]leave.LeaveLog, len(r.logs))
	for i := range r.logs {
		out[len(r.logs)-1-i] = r.logs[i]
	}
	return out, nil
}

type balanceKey struct {
	employee  uuid.UUID
	leaveType uuid.UUID
}

type memTypeRepo struct {
	types        map[uuid.UUID]leave.LeaveType
	balances     map[balanceKey]int
	decrementErr error
	decrements   int
}

func newMemTypeRepo() *memTypeRepo {
	return &memTypeRepo{
		types:    map[uuid.UUID]leave.LeaveType{},
		balances: map[balanceKey]int{},
	}
}

func (r *memTypeRepo) WithTx(tx *sql.Tx) leave.TypeRepository { return r }

func (r *memTypeRepo) CreateType(ctx context.Context, t *leave.LeaveType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *memTypeRepo) UpdateType(ctx context.Context, t *leave.LeaveType) error {
	r.types[t.ID] = *t
	return nil
}

func (r *memTypeRepo) FindTypeByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	t, ok := r.types[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *memTypeRepo) FindAllTypes(ctx context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTypeRepo) UpsertBalance(ctx context.Context, b *leave.LeaveBalance) error {
	r.balances[balanceKey{b.EmployeeID, b.LeaveTypeID}] = b.Remaining
	return nil
}

func (r *memTypeRepo) FindBalancesByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for k, v := range r.balances {
		if k.employee.String() == employeeID {
			out = append(out, leave.LeaveBalance{EmployeeID: k.employee, LeaveTypeID: k.leaveType, Remaining: v})
		}
	}
	return out, nil
}

func (r *memTypeRepo) DecrementBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, days int) (int64, error) {
	if r.decrementErr != nil {
		return 0, r.decrementErr
	}
	k := balanceKey{employeeID, leaveTypeID}
	if _, ok := r.balances[k]; !ok {
		return 0, nil
	}
	r.balances[k] -= days
	r.decrements++
	return 1, nil
}
