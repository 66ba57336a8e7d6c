package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/dbx"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/auth"
	"github.com/dmitrijs2005/userdirectory/internal/server/config"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/bans"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/logs"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/roles"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
)

// --- fakes ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	rows  map[string]*models.User
	order []string

	createErr error
	getErr    error
	existsErr error
	updateErr error

	creates     int
	updates     []models.UserPatch
	existsCalls int
	lastSel     models.UserSelect
}

func newFakeUsersRepo(rows ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{rows: map[string]*models.User{}}
	for _, u := range rows {
		f.rows[u.ID] = u
		f.order = append(f.order, u.ID)
	}
	return f
}

func project(u *models.User, sel models.UserSelect) *models.User {
	out := &models.User{}
	if sel[models.UserFieldID] {
		out.ID = u.ID
	}
	if sel[models.UserFieldEmail] {
		out.Email = u.Email
	}
	if sel[models.UserFieldPassword] {
		out.Password = u.Password
	}
	if sel[models.UserFieldRoleID] {
		out.RoleID = u.RoleID
	}
	if sel[models.UserFieldProfile] {
		out.Profile = u.Profile
	}
	if sel[models.UserFieldCreatedAt] {
		out.CreatedAt = u.CreatedAt
	}
	if sel[models.UserFieldUpdatedAt] {
		out.UpdatedAt = u.UpdatedAt
	}
	return out
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creates++
	cp := *u
	f.rows[u.ID] = &cp
	f.order = append(f.order, u.ID)
	out := cp
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, id := range f.order {
		if f.rows[id].Email == email {
			cp := *f.rows[id]
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string, sel models.UserSelect) (*models.User, error) {
	f.lastSel = sel
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return project(u, sel), nil
}

func (f *fakeUsersRepo) Exists(_ context.Context, id string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeUsersRepo) List(_ context.Context, sel models.UserSelect) ([]*models.User, error) {
	f.lastSel = sel
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]*models.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, project(f.rows[id], sel))
	}
	return out, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	f.updates = append(f.updates, patch)
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.RoleID != nil {
		u.RoleID = *patch.RoleID
	}
	if patch.Profile != nil {
		u.Profile = patch.Profile
	}
	cp := *u
	return &cp, nil
}

type fakeRolesRepo struct {
	roles map[models.RoleType]*models.Role
	err   error
}

func (f *fakeRolesRepo) GetByType(_ context.Context, t models.RoleType) (*models.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.roles[t]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r, nil
}

type fakeBansRepo struct {
	bans map[string][]*models.Ban
	err  error
}

func (f *fakeBansRepo) GetByUserID(_ context.Context, userID string) ([]*models.Ban, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bans[userID], nil
}

type fakeLogsRepo struct {
	entries []*models.LogEntry
	err     error
}

func (f *fakeLogsRepo) Create(_ context.Context, e *models.LogEntry) error {
	if f.err != nil {
		return f.err
	}
	e.ID = int64(len(f.entries) + 1)
	e.CreatedAt = time.Now()
	f.entries = append(f.entries, e)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRolesRepo
	b *fakeBansRepo
	l *fakeLogsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Roles(dbx.DBTX) roles.Repository              { return m.r }
func (m *fakeRepoManager) Bans(dbx.DBTX) bans.Repository                { return m.b }
func (m *fakeRepoManager) Logs(dbx.DBTX) logs.Repository                { return m.l }

// seqIDs hands out ids in order, then repeats the last one.
type seqIDs struct {
	ids []string
	n   int
}

func (s *seqIDs) NewID() string {
	id := s.ids[min(s.n, len(s.ids)-1)]
	s.n++
	return id
}

// plainHasher keeps tests fast where bcrypt itself is not under test.
type plainHasher struct {
	hashErr error
	costs   []int
}

func (h *plainHasher) Hash(p string, cost int) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	h.costs = append(h.costs, cost)
	return "hash:" + p, nil
}

func (h *plainHasher) Compare(p, hash string) bool {
	return hash == "hash:"+p
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            12,
		UserIDMaxAttempts:           3,
	}
}

func newFakeManager(rows ...*models.User) *fakeRepoManager {
	return &fakeRepoManager{
		u: newFakeUsersRepo(rows...),
		r: &fakeRolesRepo{roles: map[models.RoleType]*models.Role{
			models.RoleSubscriber: {ID: 1, Type: models.RoleSubscriber},
			models.RoleAdmin:      {ID: 2, Type: models.RoleAdmin},
		}},
		b: &fakeBansRepo{bans: map[string][]*models.Ban{}},
		l: &fakeLogsRepo{},
	}
}

func newService(t *testing.T, db *sql.DB, rm *fakeRepoManager, h PasswordHasher, ids IDSource) *UserService {
	t.Helper()
	return NewUserService(db, rm, h, ids, testConfig(), logging.Nop{})
}

func alice() *models.User {
	return &models.User{
		ID:       "u1",
		Email:    "alice@example.com",
		Password: "hash:old",
		RoleID:   1,
		Profile:  models.Profile{"name": "Alice"},
	}
}

// --- CreateUser ---

func TestCreateUser_ForcesSubscriberRole(t *testing.T) {
	rm := newFakeManager()
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"new-id"}})

	got, err := s.CreateUser(context.Background(), &models.User{
		ID: "u9", Email: "a@b.c", Password: "hash:x", RoleID: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.RoleID)
	assert.Equal(t, "u9", got.ID)
	assert.Equal(t, "hash:x", got.Password, "no hashing in CreateUser")
	assert.Equal(t, int64(1), rm.u.rows["u9"].RoleID)
}

func TestCreateUser_GeneratesIDWhenEmpty(t *testing.T) {
	rm := newFakeManager()
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"gen-1"}})

	got, err := s.CreateUser(context.Background(), &models.User{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", got.ID)
}

func TestCreateUser_MissingRole_NoWrite(t *testing.T) {
	rm := newFakeManager()
	rm.r.roles = map[models.RoleType]*models.Role{}
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"x"}})

	got, err := s.CreateUser(context.Background(), &models.User{ID: "u9", Email: "a@b.c"})
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, rm.u.creates)
	assert.Zero(t, rm.u.existsCalls)
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(rm *fakeRepoManager)
		wantRe  string
	}{
		{"role lookup", func(rm *fakeRepoManager) { rm.r.err = errBoom{} }, `error resolving default role: .*boom`},
		{"create", func(rm *fakeRepoManager) { rm.u.createErr = errBoom{} }, `error creating user: .*boom`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newFakeManager()
			tt.prepare(rm)
			s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"x"}})

			_, err := s.CreateUser(context.Background(), &models.User{ID: "u9"})
			require.Error(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.wantRe), err.Error())
			assert.ErrorIs(t, err, errBoom{})
		})
	}
}

// --- reads ---

func TestGetByEmail(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, nil)
	ctx := context.Background()

	got, err := s.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)

	rm.u.getErr = errBoom{}
	_, err = s.GetByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, errBoom{})
}

func TestGetByID_ProjectionOmitsPassword(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, nil)

	got, err := s.GetByID(context.Background(), "u1", models.UserSelect{
		models.UserFieldID: true, models.UserFieldEmail: true,
	})
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u1", Email: "alice@example.com"}, got)

	got, err = s.GetByID(context.Background(), "u1", models.SelectFullUser)
	require.NoError(t, err)
	assert.Empty(t, got.Password)

	got, err = s.GetByID(context.Background(), "missing", models.SelectFullUser)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// --- ListAll ---

func TestListAll_AuditsAndOmitsPasswords(t *testing.T) {
	bob := &models.User{ID: "u2", Email: "bob@example.com", Password: "hash:b", RoleID: 2}
	rm := newFakeManager(alice(), bob)
	s := newService(t, nil, rm, &plainHasher{}, nil)

	got, err := s.ListAll(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u2", got[1].ID)
	for _, u := range got {
		assert.Empty(t, u.Password)
	}
	assert.Equal(t, models.SelectFullUser, rm.u.lastSel)

	require.Len(t, rm.l.entries, 1)
	assert.Equal(t, models.OperationGetAllUsers, rm.l.entries[0].Operation)
	assert.Equal(t, "u2", rm.l.entries[0].CreatedBy)
}

func TestListAll_UnknownActor(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, nil)

	_, err := s.ListAll(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrUserNotFound)
	assert.Equal(t, 404, common.StatusCode(err))
	assert.Empty(t, rm.l.entries)
}

func TestListAll_AuditFailurePropagates(t *testing.T) {
	rm := newFakeManager(alice())
	rm.l.err = errBoom{}
	s := newService(t, nil, rm, &plainHasher{}, nil)

	_, err := s.ListAll(context.Background(), "u1")
	assert.ErrorIs(t, err, errBoom{})
}

// --- ChangePassword ---

func TestChangePassword_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeManager(alice())
	h := &plainHasher{}
	s := newService(t, db, rm, h, nil)

	msg, err := s.ChangePassword(context.Background(), "u1", "old", "new")
	require.NoError(t, err)
	assert.Equal(t, &Message{Message: "The password has been changed successfully!"}, msg)

	assert.Equal(t, "hash:new", rm.u.rows["u1"].Password)
	assert.Equal(t, []int{12}, h.costs)
	require.Len(t, rm.l.entries, 1)
	assert.Equal(t, models.OperationChangePassword, rm.l.entries[0].Operation)
	assert.Equal(t, "u1", rm.l.entries[0].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeManager(alice())
	s := newService(t, db, rm, &plainHasher{}, nil)

	_, err := s.ChangePassword(context.Background(), "u1", "wrong", "new")
	require.ErrorIs(t, err, common.ErrIncorrectData)
	assert.Equal(t, 400, common.StatusCode(err))
	assert.Equal(t, "hash:old", rm.u.rows["u1"].Password)
	assert.Empty(t, rm.u.updates)
	assert.Empty(t, rm.l.entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword_UnknownActor(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeManager(alice())
	s := newService(t, db, rm, &plainHasher{}, nil)

	_, err := s.ChangePassword(context.Background(), "ghost", "old", "new")
	require.ErrorIs(t, err, common.ErrUserNotFound)
	assert.Empty(t, rm.u.updates)
	assert.Empty(t, rm.l.entries)
}

func TestChangePassword_AuditFailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeManager(alice())
	rm.l.err = errBoom{}
	s := newService(t, db, rm, &plainHasher{}, nil)

	_, err := s.ChangePassword(context.Background(), "u1", "old", "new")
	require.Error(t, err)
	assert.Regexp(t, `error writing audit log: .*boom`, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword_HashFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := newFakeManager(alice())
	s := newService(t, db, rm, &plainHasher{hashErr: errBoom{}}, nil)

	_, err := s.ChangePassword(context.Background(), "u1", "old", "new")
	require.ErrorIs(t, err, errBoom{})
	assert.Empty(t, rm.u.updates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePassword_Bcrypt(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	hash, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	require.NoError(t, err)

	u := alice()
	u.Password = string(hash)
	rm := newFakeManager(u)

	cfg := testConfig()
	cfg.PasswordHashCost = bcrypt.MinCost
	s := NewUserService(db, rm, BcryptHasher{}, UUIDSource{}, cfg, logging.Nop{})

	_, err = s.ChangePassword(context.Background(), "u1", "old", "new")
	require.NoError(t, err)

	stored := rm.u.rows["u1"].Password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new")))
	cost, err := bcrypt.Cost([]byte(stored))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

// --- UpdateUser ---

func TestUpdateUser(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, nil)
	email := "new@example.com"

	got, err := s.UpdateUser(context.Background(), models.UserPatch{Email: &email}, &models.User{ID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "hash:old", got.Password)

	_, err = s.UpdateUser(context.Background(), models.UserPatch{Email: &email}, &models.User{ID: "ghost"})
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	rm.u.updateErr = errBoom{}
	_, err = s.UpdateUser(context.Background(), models.UserPatch{}, &models.User{ID: "u1"})
	assert.ErrorIs(t, err, errBoom{})
}

func TestUpdateUser_EmailInUse(t *testing.T) {
	rm := newFakeManager(alice())
	rm.u.updateErr = fmt.Errorf("%w: key (email)", common.ErrorAlreadyExists)
	s := newService(t, nil, rm, &plainHasher{}, nil)
	email := "taken@example.com"

	_, err := s.UpdateUser(context.Background(), models.UserPatch{Email: &email}, &models.User{ID: "u1"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

// --- IsBanned ---

func TestIsBanned(t *testing.T) {
	lifted := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	open1 := &models.Ban{ID: 1, UserID: "u1", Reason: "spam"}
	closed := &models.Ban{ID: 2, UserID: "u1", Reason: "abuse", UnbannedAt: &lifted}
	open2 := &models.Ban{ID: 3, UserID: "u1", Reason: "again"}

	tests := []struct {
		name string
		bans []*models.Ban
		want *models.Ban
	}{
		{"no bans", nil, nil},
		{"single open", []*models.Ban{open1}, open1},
		{"last lifted, earlier open", []*models.Ban{open1, closed}, nil},
		{"last open", []*models.Ban{closed, open2}, open2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newFakeManager(alice())
			rm.b.bans["u1"] = tt.bans
			s := newService(t, nil, rm, &plainHasher{}, nil)

			got, err := s.IsBanned(context.Background(), &models.User{ID: "u1"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBanned_Error(t *testing.T) {
	rm := newFakeManager()
	rm.b.err = errBoom{}
	s := newService(t, nil, rm, &plainHasher{}, nil)

	_, err := s.IsBanned(context.Background(), &models.User{ID: "u1"})
	assert.ErrorIs(t, err, errBoom{})
}

// --- GenerateUserID ---

func TestGenerateUserID_RetriesUntilFree(t *testing.T) {
	rm := newFakeManager(&models.User{ID: "a"}, &models.User{ID: "b"})
	ids := &seqIDs{ids: []string{"a", "b", "c"}}
	s := newService(t, nil, rm, &plainHasher{}, ids)

	id, err := s.GenerateUserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", id)
	assert.Equal(t, 3, rm.u.existsCalls)
}

func TestGenerateUserID_Exhausted(t *testing.T) {
	rm := newFakeManager(&models.User{ID: "a"})
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"a"}})

	_, err := s.GenerateUserID(context.Background())
	require.ErrorIs(t, err, common.ErrIdentifierSpaceExhausted)
	assert.Equal(t, 3, rm.u.existsCalls)
}

func TestGenerateUserID_ExistsErrorNotRetried(t *testing.T) {
	rm := newFakeManager()
	rm.u.existsErr = errBoom{}
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"a"}})

	_, err := s.GenerateUserID(context.Background())
	require.ErrorIs(t, err, errBoom{})
	assert.Equal(t, 1, rm.u.existsCalls)
}

func TestUUIDSource(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	a, b := UUIDSource{}.NewID(), UUIDSource{}.NewID()
	assert.Regexp(t, re, a)
	assert.NotEqual(t, a, b)
}

// --- Register / Login ---

func TestRegister(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"u1", "u2"}})
	ctx := context.Background()

	got, err := s.Register(ctx, "bob@example.com", "pw", models.Profile{"name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, "hash:pw", got.Password)
	assert.Equal(t, int64(1), got.RoleID)

	_, err = s.Register(ctx, "alice@example.com", "pw", nil)
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_EmailTakenByConcurrentInsert(t *testing.T) {
	rm := newFakeManager()
	rm.u.createErr = fmt.Errorf("db error: %w", common.ErrorAlreadyExists)
	s := newService(t, nil, rm, &plainHasher{}, &seqIDs{ids: []string{"u1"}})

	got, err := s.Register(context.Background(), "bob@example.com", "pw", nil)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	rm := newFakeManager()
	s := newService(t, nil, rm, &plainHasher{hashErr: fmt.Errorf("wrap: %w", ErrPasswordTooLong)}, nil)

	_, err := s.Register(context.Background(), "bob@example.com", "pw", nil)
	assert.ErrorIs(t, err, common.ErrIncorrectData)
	assert.Zero(t, rm.u.creates)
}

func TestLogin(t *testing.T) {
	rm := newFakeManager(alice())
	s := newService(t, nil, rm, &plainHasher{}, nil)
	ctx := context.Background()

	token, err := s.Login(ctx, "alice@example.com", "old")
	require.NoError(t, err)
	id, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = s.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrIncorrectData)

	_, err = s.Login(ctx, "nobody@example.com", "old")
	assert.ErrorIs(t, err, common.ErrIncorrectData)

	rm.b.bans["u1"] = []*models.Ban{{ID: 7, UserID: "u1"}}
	_, err = s.Login(ctx, "alice@example.com", "old")
	assert.ErrorIs(t, err, common.ErrUserBanned)
}

// pgUsersManager serves the users table from the Postgres repository.
type pgUsersManager struct {
	*fakeRepoManager
	repo users.Repository
}

func (m pgUsersManager) Users(dbx.DBTX) users.Repository { return m.repo }

func TestGetByID_MalformedIDIsAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rm := pgUsersManager{fakeRepoManager: newFakeManager(), repo: users.NewPostgresRepository(db)}
	s := NewUserService(db, rm, &plainHasher{}, nil, testConfig(), logging.Nop{})

	got, err := s.GetByID(context.Background(), "bob", models.SelectFullUser)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = s.ListAll(context.Background(), "bob")
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
