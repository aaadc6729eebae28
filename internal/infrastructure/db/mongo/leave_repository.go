package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const leaveCollection = "leave_requests"

type MongoLeaveRepository struct {
	coll *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *MongoLeaveRepository {
	return &MongoLeaveRepository{coll: db.Collection(leaveCollection)}
}

type mongoLeave struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID  string             `bson:"company_id"`
	EmployeeID string             `bson:"employee_id"`
	Type       string             `bson:"type"`
	StartDate  int64              `bson:"start_date"`
	EndDate    int64              `bson:"end_date"`
	Days       int                `bson:"days"`
	Status     string             `bson:"status"`
	Reason     string             `bson:"reason,omitempty"`
	DecidedBy  string             `bson:"decided_by,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (r *MongoLeaveRepository) Create(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	res, err := r.coll.InsertOne(ctx, fromLeave(request))
	if err != nil {
		return nil, fmt.Errorf("insert leave request: %w", err)
	}
	request.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return request, nil
}

func (r *MongoLeaveRepository) FindByID(ctx context.Context, companyID, id string) (*domain.LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeaveNotFound
	}
	var ml mongoLeave
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "company_id": companyID}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	return toLeave(ml), nil
}

func (r *MongoLeaveRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{"company_id": companyID})
}

func (r *MongoLeaveRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "employee_id": employeeID})
}

func (r *MongoLeaveRepository) Update(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(request.ID)
	if err != nil {
		return nil, domain.ErrLeaveNotFound
	}
	ml := fromLeave(request)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid, "company_id": request.CompanyID}, ml)
	if err != nil {
		return nil, fmt.Errorf("update leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrLeaveNotFound
	}
	return request, nil
}

func (r *MongoLeaveRepository) list(ctx context.Context, filter bson.M) ([]domain.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.LeaveRequest
	for cur.Next(ctx) {
		var ml mongoLeave
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode leave request: %w", err)
		}
		out = append(out, *toLeave(ml))
	}
	return out, cur.Err()
}

func fromLeave(l *domain.LeaveRequest) mongoLeave {
	ml := mongoLeave{
		CompanyID:  l.CompanyID,
		EmployeeID: l.EmployeeID,
		Type:       l.Type,
		StartDate:  l.StartDate.Unix(),
		EndDate:    l.EndDate.Unix(),
		Days:       l.Days,
		Status:     string(l.Status),
		Reason:     l.Reason,
		DecidedBy:  l.DecidedBy,
		CreatedAt:  l.CreatedAt.Unix(),
		UpdatedAt:  l.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(l.ID); err == nil {
		ml.ID = oid
	}
	return ml
}

func toLeave(ml mongoLeave) *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:         ml.ID.Hex(),
		CompanyID:  ml.CompanyID,
		EmployeeID: ml.EmployeeID,
		Type:       ml.Type,
		StartDate:  unixToTime(ml.StartDate),
		EndDate:    unixToTime(ml.EndDate),
		Days:       ml.Days,
		Status:     domain.LeaveStatus(ml.Status),
		Reason:     ml.Reason,
		DecidedBy:  ml.DecidedBy,
		CreatedAt:  unixToTime(ml.CreatedAt),
		UpdatedAt:  unixToTime(ml.UpdatedAt),
	}
}
