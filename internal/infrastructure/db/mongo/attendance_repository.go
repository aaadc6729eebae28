package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const attendanceCollection = "attendance"

type MongoAttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{coll: db.Collection(attendanceCollection)}
}

type mongoAttendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID  string             `bson:"company_id"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"`
	ClockIn    int64              `bson:"clock_in"`
	ClockOut   int64              `bson:"clock_out,omitempty"`
	Hours      float64            `bson:"hours,omitempty"`
}

func (r *MongoAttendanceRepository) Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	ma := mongoAttendance{
		CompanyID:  record.CompanyID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		ClockIn:    record.ClockIn.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, ma)
	if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}
	record.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return record, nil
}

// FindOpen returns the day's record without a clock-out, or nil when the
// employee has not clocked in (or already clocked out).
func (r *MongoAttendanceRepository) FindOpen(ctx context.Context, companyID, employeeID, date string) (*domain.Attendance, error) {
	filter := bson.M{
		"company_id":  companyID,
		"employee_id": employeeID,
		"date":        date,
		"clock_out":   bson.M{"$exists": false},
	}
	var ma mongoAttendance
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open attendance: %w", err)
	}
	return toAttendance(ma), nil
}

func (r *MongoAttendanceRepository) Update(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return nil, domain.ErrNotClockedIn
	}
	set := bson.M{"hours": record.Hours}
	if record.ClockOut != nil {
		set["clock_out"] = record.ClockOut.Unix()
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "company_id": record.CompanyID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotClockedIn
	}
	return record, nil
}

func (r *MongoAttendanceRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.Attendance, error) {
	filter := bson.M{"company_id": companyID, "employee_id": employeeID}
	opts := options.Find().SetSort(bson.D{{Key: "clock_in", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Attendance
	for cur.Next(ctx) {
		var ma mongoAttendance
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode attendance: %w", err)
		}
		out = append(out, *toAttendance(ma))
	}
	return out, cur.Err()
}

func toAttendance(ma mongoAttendance) *domain.Attendance {
	a := &domain.Attendance{
		ID:         ma.ID.Hex(),
		CompanyID:  ma.CompanyID,
		EmployeeID: ma.EmployeeID,
		Date:       ma.Date,
		ClockIn:    unixToTime(ma.ClockIn),
		Hours:      ma.Hours,
	}
	if ma.ClockOut != 0 {
		t := time.Unix(ma.ClockOut, 0).UTC()
		a.ClockOut = &t
	}
	return a
}
