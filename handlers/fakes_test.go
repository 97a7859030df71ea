package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Sistem-Payroll-Karyawan/models"
	"Sistem-Payroll-Karyawan/pkg/geofence"
	"Sistem-Payroll-Karyawan/pkg/paseto"
	"Sistem-Payroll-Karyawan/pkg/payroll"
	"Sistem-Payroll-Karyawan/repository"
)

// Repository palsu berbasis memori supaya handler bisa dites tanpa MongoDB.
var (
	_ repository.AttendanceRepository   = (*fakeAttendanceRepo)(nil)
	_ repository.UserRepository         = (*fakeUserRepo)(nil)
	_ repository.PositionRepository     = (*fakePositionRepo)(nil)
	_ repository.LeaveRequestRepository = (*fakeLeaveRepo)(nil)
	_ repository.PayrollRepository      = (*fakePayrollRepo)(nil)
	_ repository.ConfigRepository       = (*fakeConfigRepo)(nil)
)

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

// fixedClock mengembalikan jam statis "YYYY-MM-DD HH:MM" pada timezone kantor.
func fixedClock(t *testing.T, value string, loc *time.Location) func() time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

// injectClaims meniru AuthMiddleware dengan menaruh klaim langsung di Locals.
func injectClaims(claims *paseto.Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", claims)
		return c.Next()
	}
}

func adminClaims() *paseto.Claims {
	return &paseto.Claims{UserID: primitive.NewObjectID(), Email: "admin@gmail.com", Role: "admin"}
}

func employeeClaims(userID primitive.ObjectID) *paseto.Claims {
	return &paseto.Claims{UserID: userID, Email: "karyawan@gmail.com", Role: "employee"}
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(t *testing.T, method, target string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func parseBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func paginateItems[T any](items []T, page, limit int64) []T {
	start := (page - 1) * limit
	if start >= int64(len(items)) {
		return nil
	}
	end := start + limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[start:end]
}

func matchDateFilter(raw interface{}, date string) bool {
	switch v := raw.(type) {
	case string:
		return date == v
	case primitive.Regex:
		return strings.HasPrefix(date, strings.TrimPrefix(v.Pattern, "^"))
	}
	return false
}

// ---- attendance ----

type fakeAttendanceRepo struct {
	mu    sync.Mutex
	items []*models.Attendance
}

func (f *fakeAttendanceRepo) CreateAttendance(_ context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.UserID == attendance.UserID && item.Date == attendance.Date {
			return nil, fmt.Errorf("absensi untuk tanggal tersebut sudah ada")
		}
	}

	attendance.ID = primitive.NewObjectID()
	attendance.CreatedAt = time.Now()
	attendance.UpdatedAt = time.Now()

	stored := *attendance
	f.items = append(f.items, &stored)
	return &mongo.InsertOneResult{InsertedID: attendance.ID}, nil
}

func (f *fakeAttendanceRepo) FindAttendanceByID(_ context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindAttendanceByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.UserID == userID && item.Date == date {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) FindAttendancesByUserID(_ context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Attendance, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Attendance
	for _, item := range f.items {
		if item.UserID == userID {
			matched = append(matched, *item)
		}
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakeAttendanceRepo) FindApprovedCompleteInPeriod(_ context.Context, userID primitive.ObjectID, period string) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Attendance
	for _, item := range f.items {
		if item.UserID != userID || !strings.HasPrefix(item.Date, period) {
			continue
		}
		if item.ApprovalStatus != models.ApprovalStatusApproved {
			continue
		}
		if item.ClockIn == nil || item.ClockOut == nil {
			continue
		}
		matched = append(matched, *item)
	}
	return matched, nil
}

func (f *fakeAttendanceRepo) GetAllAttendances(_ context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.AttendanceWithUser
	for _, item := range f.items {
		if raw, ok := filter["date"]; ok && !matchDateFilter(raw, item.Date) {
			continue
		}
		if raw, ok := filter["user_id"]; ok && raw.(primitive.ObjectID) != item.UserID {
			continue
		}
		if raw, ok := filter["approval_status"]; ok && raw.(string) != item.ApprovalStatus {
			continue
		}
		matched = append(matched, models.AttendanceWithUser{Attendance: *item})
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakeAttendanceRepo) UpdateAttendance(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		for key, raw := range updateData {
			switch key {
			case "clock_in":
				v := raw.(time.Time)
				item.ClockIn = &v
			case "clock_out":
				v := raw.(time.Time)
				item.ClockOut = &v
			case "clock_out_lat":
				item.ClockOutLat = raw.(string)
			case "clock_out_lng":
				item.ClockOutLng = raw.(string)
			case "clock_out_photo":
				item.ClockOutPhoto = raw.(string)
			case "is_within_geofence_out":
				item.IsWithinGeofenceOut = raw.(bool)
			case "status":
				item.Status = raw.(string)
			case "approval_status":
				item.ApprovalStatus = raw.(string)
			case "note":
				item.Note = raw.(string)
			}
		}
		item.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeAttendanceRepo) DeleteAttendance(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeAttendanceRepo) CountByDate(_ context.Context, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.Date == date {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountLateByDate(_ context.Context, date string, lateAfter time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.Date == date && item.ClockIn != nil && item.ClockIn.After(lateAfter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountPendingApproval(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.ApprovalStatus == models.ApprovalStatusPending {
			count++
		}
	}
	return count, nil
}

// ---- user ----

type fakeUserRepo struct {
	mu    sync.Mutex
	items []*models.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.Email == user.Email {
			return nil, fmt.Errorf("email sudah ada")
		}
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsFirstLogin = true

	stored := *user
	f.items = append(f.items, &stored)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.Email == email {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context, filter bson.M, page, limit int64) ([]models.UserWithPosition, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.UserWithPosition
	for _, item := range f.items {
		if raw, ok := filter["role"]; ok && raw.(string) != item.Role {
			continue
		}
		if raw, ok := filter["status"]; ok && raw.(string) != item.Status {
			continue
		}
		matched = append(matched, models.UserWithPosition{User: *item})
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		for key, raw := range updateData {
			switch key {
			case "name":
				item.Name = raw.(string)
			case "email":
				item.Email = raw.(string)
			case "password":
				item.Password = raw.(string)
			case "role":
				item.Role = raw.(string)
			case "phone":
				item.Phone = raw.(string)
			case "address":
				item.Address = raw.(string)
			case "join_date":
				item.JoinDate = raw.(string)
			case "status":
				item.Status = raw.(string)
			case "photo":
				item.Photo = raw.(string)
			case "position_id":
				if raw == nil {
					item.PositionID = nil
				} else {
					v := raw.(primitive.ObjectID)
					item.PositionID = &v
				}
			}
		}
		item.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserRepo) UpdateUserPassword(_ context.Context, id primitive.ObjectID, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			item.Password = hashedPassword
			item.IsFirstLogin = false
			return nil
		}
	}
	return fmt.Errorf("user tidak ditemukan")
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeUserRepo) FindEmployees(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.User
	for _, item := range f.items {
		if item.Role != "admin" {
			matched = append(matched, *item)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) CountEmployees(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.Role != "admin" {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CountEmployeesWithPosition(_ context.Context, positionID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.PositionID != nil && *item.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

// ---- position ----

type fakePositionRepo struct {
	mu    sync.Mutex
	items []*models.Position
}

func (f *fakePositionRepo) CreatePosition(_ context.Context, position *models.Position) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	position.ID = primitive.NewObjectID()
	position.CreatedAt = time.Now()
	position.UpdatedAt = time.Now()

	stored := *position
	f.items = append(f.items, &stored)
	return &mongo.InsertOneResult{InsertedID: position.ID}, nil
}

func (f *fakePositionRepo) FindPositionByID(_ context.Context, id primitive.ObjectID) (*models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePositionRepo) FindPositionByTitle(_ context.Context, title string) (*models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.Title == title {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePositionRepo) GetAllPositions(_ context.Context) ([]models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	positions := make([]models.Position, 0, len(f.items))
	for _, item := range f.items {
		positions = append(positions, *item)
	}
	return positions, nil
}

func (f *fakePositionRepo) UpdatePosition(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		for key, raw := range updateData {
			switch key {
			case "title":
				item.Title = raw.(string)
			case "hourly_rate":
				item.HourlyRate = raw.(float64)
			}
		}
		item.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakePositionRepo) DeletePosition(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

// ---- leave request ----

type fakeLeaveRepo struct {
	mu    sync.Mutex
	items []*models.LeaveRequest
}

func (f *fakeLeaveRepo) CreateLeaveRequest(_ context.Context, leave *models.LeaveRequest) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	leave.ID = primitive.NewObjectID()
	leave.Status = models.LeaveStatusPending
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = time.Now()

	stored := *leave
	f.items = append(f.items, &stored)
	return &mongo.InsertOneResult{InsertedID: leave.ID}, nil
}

func (f *fakeLeaveRepo) FindLeaveRequestByID(_ context.Context, id primitive.ObjectID) (*models.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveRepo) FindLeaveRequestsByUserID(_ context.Context, userID primitive.ObjectID, page, limit int64) ([]models.LeaveRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.LeaveRequest
	for _, item := range f.items {
		if item.UserID == userID {
			matched = append(matched, *item)
		}
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakeLeaveRepo) GetAllLeaveRequests(_ context.Context, filter bson.M, page, limit int64) ([]models.LeaveRequestWithUser, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.LeaveRequestWithUser
	for _, item := range f.items {
		if raw, ok := filter["status"]; ok && raw.(string) != item.Status {
			continue
		}
		if raw, ok := filter["user_id"]; ok && raw.(primitive.ObjectID) != item.UserID {
			continue
		}
		matched = append(matched, models.LeaveRequestWithUser{LeaveRequest: *item})
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakeLeaveRepo) UpdateLeaveRequest(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		for key, raw := range updateData {
			switch key {
			case "status":
				item.Status = raw.(string)
			case "approved_by":
				v := raw.(primitive.ObjectID)
				item.ApprovedBy = &v
			case "type":
				item.Type = raw.(string)
			case "reason":
				item.Reason = raw.(string)
			case "start_date":
				item.StartDate = raw.(string)
			case "end_date":
				item.EndDate = raw.(string)
			case "working_days":
				item.WorkingDays = raw.(int)
			}
		}
		item.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeLeaveRepo) DeleteLeaveRequest(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeLeaveRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

// ---- payroll ----

type fakePayrollRepo struct {
	mu    sync.Mutex
	items []*models.Payroll
}

func (f *fakePayrollRepo) InsertPayrolls(_ context.Context, payrolls []models.Payroll) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range payrolls {
		stored := payrolls[i]
		stored.ID = primitive.NewObjectID()
		stored.CreatedAt = time.Now()
		stored.UpdatedAt = time.Now()
		f.items = append(f.items, &stored)
	}
	return nil
}

func (f *fakePayrollRepo) CreatePayroll(_ context.Context, payroll *models.Payroll) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.UserID == payroll.UserID && item.Period == payroll.Period {
			return nil, fmt.Errorf("payroll untuk periode tersebut sudah ada")
		}
	}

	payroll.ID = primitive.NewObjectID()
	payroll.CreatedAt = time.Now()
	payroll.UpdatedAt = time.Now()

	stored := *payroll
	f.items = append(f.items, &stored)
	return &mongo.InsertOneResult{InsertedID: payroll.ID}, nil
}

func (f *fakePayrollRepo) DeleteByPeriod(_ context.Context, period string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var kept []*models.Payroll
	var deleted int64
	for _, item := range f.items {
		if item.Period == period {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	return deleted, nil
}

func (f *fakePayrollRepo) FindPayrollByID(_ context.Context, id primitive.ObjectID) (*models.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollRepo) FindPayrollsByUserID(_ context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Payroll, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Payroll
	for _, item := range f.items {
		if item.UserID == userID {
			matched = append(matched, *item)
		}
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakePayrollRepo) FindPayrollsByPeriod(_ context.Context, period string) ([]models.PayrollWithUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.PayrollWithUser
	for _, item := range f.items {
		if item.Period == period {
			matched = append(matched, models.PayrollWithUser{Payroll: *item})
		}
	}
	return matched, nil
}

func (f *fakePayrollRepo) GetAllPayrolls(_ context.Context, filter bson.M, page, limit int64) ([]models.PayrollWithUser, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.PayrollWithUser
	for _, item := range f.items {
		if raw, ok := filter["period"]; ok && raw.(string) != item.Period {
			continue
		}
		if raw, ok := filter["status"]; ok && raw.(string) != item.Status {
			continue
		}
		if raw, ok := filter["user_id"]; ok && raw.(primitive.ObjectID) != item.UserID {
			continue
		}
		matched = append(matched, models.PayrollWithUser{Payroll: *item})
	}
	return paginateItems(matched, page, limit), int64(len(matched)), nil
}

func (f *fakePayrollRepo) UpdatePayroll(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		for key, raw := range updateData {
			switch key {
			case "bonus":
				item.Bonus = raw.(int64)
			case "other_deduction":
				item.OtherDeduction = raw.(int64)
			case "status":
				item.Status = raw.(string)
			case "total_net":
				item.TotalNet = raw.(int64)
			}
		}
		item.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakePayrollRepo) DeletePayroll(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakePayrollRepo) CountByStatusAndPeriod(_ context.Context, status, period string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, item := range f.items {
		if item.Status == status && item.Period == period {
			count++
		}
	}
	return count, nil
}

// ---- config ----

type fakeConfigRepo struct {
	mu          sync.Mutex
	entries     map[string]*models.ConfigEntry
	geoSettings geofence.Settings
	paySettings payroll.Settings
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{
		entries:     make(map[string]*models.ConfigEntry),
		geoSettings: geofence.DefaultSettings(),
		paySettings: payroll.DefaultSettings(),
	}
}

func (f *fakeConfigRepo) UpsertEntry(_ context.Context, entry *models.ConfigEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.entries[entry.Key]
	if !ok {
		entry.ID = primitive.NewObjectID()
	} else {
		entry.ID = existing.ID
	}
	entry.UpdatedAt = time.Now()

	stored := *entry
	f.entries[entry.Key] = &stored
	return nil
}

func (f *fakeConfigRepo) FindEntryByKey(_ context.Context, key string) (*models.ConfigEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[key]
	if !ok {
		return nil, nil
	}
	found := *entry
	return &found, nil
}

func (f *fakeConfigRepo) GetAllEntries(_ context.Context) ([]models.ConfigEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]models.ConfigEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func (f *fakeConfigRepo) DeleteEntry(_ context.Context, key string) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[key]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.entries, key)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeConfigRepo) LoadGeofenceSettings(_ context.Context) geofence.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.geoSettings
}

func (f *fakeConfigRepo) LoadPayrollSettings(_ context.Context) payroll.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paySettings
}
