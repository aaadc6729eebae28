package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const (
	userCollection    = "users"
	companyCollection = "companies"
)

// MongoAuthRepository persists users and companies and provisions tenants.
type MongoAuthRepository struct {
	users     *mongo.Collection
	companies *mongo.Collection
	employees *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{
		users:     db.Collection(userCollection),
		companies: db.Collection(companyCollection),
		employees: db.Collection(employeeCollection),
	}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CompanyID    string             `bson:"company_id"`
	Active       bool               `bson:"active"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

type mongoCompany struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Industry  string             `bson:"industry,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

// ProvisionTenant creates the company, its admin user, and the bootstrap
// employee record. The unique index on users.email rejects duplicate
// registrations; inserts after a failure are compensated so a half-created
// tenant is not left behind.
func (r *MongoAuthRepository) ProvisionTenant(ctx context.Context, company *domain.Company, user *domain.User, employee *domain.Employee) (*domain.User, error) {
	companyRes, err := r.companies.InsertOne(ctx, mongoCompany{
		Name:      company.Name,
		Industry:  company.Industry,
		CreatedAt: company.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	companyID := companyRes.InsertedID.(primitive.ObjectID)

	userRes, err := r.users.InsertOne(ctx, mongoUser{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CompanyID:    companyID.Hex(),
		Active:       user.Active,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	})
	if err != nil {
		_, _ = r.companies.DeleteOne(ctx, bson.M{"_id": companyID})
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	userID := userRes.InsertedID.(primitive.ObjectID)

	_, err = r.employees.InsertOne(ctx, mongoEmployee{
		CompanyID: companyID.Hex(),
		UserID:    userID.Hex(),
		Email:     employee.Email,
		HireDate:  employee.HireDate.Unix(),
		Active:    employee.Active,
		CreatedAt: employee.CreatedAt.Unix(),
		UpdatedAt: employee.UpdatedAt.Unix(),
	})
	if err != nil {
		_, _ = r.users.DeleteOne(ctx, bson.M{"_id": userID})
		_, _ = r.companies.DeleteOne(ctx, bson.M{"_id": companyID})
		return nil, fmt.Errorf("insert bootstrap employee: %w", err)
	}

	return r.FindUserByID(ctx, userID.Hex())
}

func (r *MongoAuthRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(mu), nil
}

func (r *MongoAuthRepository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	var mu mongoUser
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toUser(mu), nil
}

// DeactivateUser marks the account inactive so refresh stops succeeding.
func (r *MongoAuthRepository) DeactivateUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"active":     false,
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUser(mu mongoUser) *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		CompanyID:    mu.CompanyID,
		Active:       mu.Active,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
