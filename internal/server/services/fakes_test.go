package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

var errStore = errors.New("store down")

// fakeManager wraps the in-memory backend and lets individual repository
// calls fail. With rollback set, a failed RunInTx hides the task created
// inside it, the way a transactional backend would.
type fakeManager struct {
	*repomanager.MemoryRepositoryManager
	users    *fakeUsersRepo
	tasks    *fakeTasksRepo
	rollback bool
}

func newFakeManager() *fakeManager {
	mem := repomanager.NewMemoryRepositoryManager()
	return &fakeManager{
		MemoryRepositoryManager: mem,
		users:                   &fakeUsersRepo{Repository: mem.Users()},
		tasks:                   &fakeTasksRepo{Repository: mem.Tasks()},
	}
}

func (m *fakeManager) Users() users.Repository { return m.users }
func (m *fakeManager) Tasks() tasks.Repository { return m.tasks }

func (m *fakeManager) RunInTx(ctx context.Context, fn repomanager.TxFunc) error {
	err := fn(ctx, m.users, m.tasks)
	if err != nil && m.rollback && m.tasks.lastCreated != "" {
		if m.tasks.getErrs == nil {
			m.tasks.getErrs = map[string]error{}
		}
		m.tasks.getErrs[m.tasks.lastCreated] = common.ErrorNotFound
	}
	return err
}

type fakeUsersRepo struct {
	users.Repository

	createErr    error
	getByMailErr error
	getByIDErr   error
	appendErr    error

	createCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.Repository.Create(ctx, u)
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByMailErr != nil {
		return nil, f.getByMailErr
	}
	return f.Repository.GetUserByEmail(ctx, email)
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.Repository.GetUserByID(ctx, id)
}

func (f *fakeUsersRepo) AppendTask(ctx context.Context, userID, taskID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	return f.Repository.AppendTask(ctx, userID, taskID)
}

type fakeTasksRepo struct {
	tasks.Repository

	createErr error
	updateErr error
	// getErrs maps a task id to the error GetByID returns for it.
	getErrs map[string]error
	// failAfterUpdate makes every GetByID fail once Update has been called.
	failAfterUpdate bool
	updated         bool

	createCalls int
	lastCreated string
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created, err := f.Repository.Create(ctx, t)
	if err == nil {
		f.lastCreated = created.ID
	}
	return created, err
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if err, ok := f.getErrs[id]; ok {
		return nil, err
	}
	if f.failAfterUpdate && f.updated {
		return nil, errStore
	}
	return f.Repository.GetByID(ctx, id)
}

func (f *fakeTasksRepo) Update(ctx context.Context, t *models.Task) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	return f.Repository.Update(ctx, t)
}

type fakeHasher struct {
	hashErr   error
	verifyErr error
}

func (f *fakeHasher) Hash(string) (string, error) { return "", f.hashErr }

func (f *fakeHasher) Verify(string, string) (bool, error) { return false, f.verifyErr }

type fakeIssuer struct{ err error }

func (f *fakeIssuer) Issue(string, string) (string, error) { return "", f.err }

func newAccountService(t *testing.T, m repomanager.RepositoryManager) (*AccountService, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	return NewAccountService(m, auth.NewPasswordHasher(bcrypt.MinCost), tokens, logging.Nop()), tokens
}

func registerUser(t *testing.T, s *AccountService, name, email string) *auth.Claims {
	t.Helper()
	u, err := s.Register(context.Background(), name, email, "pw")
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return &auth.Claims{UserID: u.ID, Username: u.UserName}
}
