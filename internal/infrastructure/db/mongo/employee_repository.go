package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const employeeCollection = "employees"

type MongoEmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{coll: db.Collection(employeeCollection)}
}

type mongoEmployee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID  string             `bson:"company_id"`
	UserID     string             `bson:"user_id,omitempty"`
	FirstName  string             `bson:"first_name,omitempty"`
	LastName   string             `bson:"last_name,omitempty"`
	Email      string             `bson:"email"`
	Position   string             `bson:"position,omitempty"`
	Department string             `bson:"department,omitempty"`
	HireDate   int64              `bson:"hire_date"`
	BaseSalary float64            `bson:"base_salary"`
	Active     bool               `bson:"active"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func (r *MongoEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	res, err := r.coll.InsertOne(ctx, fromEmployee(employee))
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return r.FindByID(ctx, employee.CompanyID, res.InsertedID.(primitive.ObjectID).Hex())
}

func (r *MongoEmployeeRepository) FindByID(ctx context.Context, companyID, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}
	var me mongoEmployee
	// company_id in the filter keeps lookups inside the tenant partition.
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "company_id": companyID}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return toEmployee(me), nil
}

func (r *MongoEmployeeRepository) FindByUserID(ctx context.Context, companyID, userID string) (*domain.Employee, error) {
	var me mongoEmployee
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "company_id": companyID}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee by user: %w", err)
	}
	return toEmployee(me), nil
}

func (r *MongoEmployeeRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Employee, error) {
	return r.list(ctx, bson.M{"company_id": companyID})
}

func (r *MongoEmployeeRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]domain.Employee, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "active": true})
}

func (r *MongoEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(employee.ID)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}
	me := fromEmployee(employee)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid, "company_id": employee.CompanyID}, me)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (r *MongoEmployeeRepository) list(ctx context.Context, filter bson.M) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Employee
	for cur.Next(ctx) {
		var me mongoEmployee
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		out = append(out, *toEmployee(me))
	}
	return out, cur.Err()
}

func fromEmployee(e *domain.Employee) mongoEmployee {
	me := mongoEmployee{
		CompanyID:  e.CompanyID,
		UserID:     e.UserID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate.Unix(),
		BaseSalary: e.BaseSalary,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt.Unix(),
		UpdatedAt:  e.UpdatedAt.Unix(),
	}
	if oid, err := primitive.ObjectIDFromHex(e.ID); err == nil {
		me.ID = oid
	}
	return me
}

func toEmployee(me mongoEmployee) *domain.Employee {
	return &domain.Employee{
		ID:         me.ID.Hex(),
		CompanyID:  me.CompanyID,
		UserID:     me.UserID,
		FirstName:  me.FirstName,
		LastName:   me.LastName,
		Email:      me.Email,
		Position:   me.Position,
		Department: me.Department,
		HireDate:   unixToTime(me.HireDate),
		BaseSalary: me.BaseSalary,
		Active:     me.Active,
		CreatedAt:  unixToTime(me.CreatedAt),
		UpdatedAt:  unixToTime(me.UpdatedAt),
	}
}
