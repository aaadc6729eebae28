package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nominasoft/hr-system/internal/core/domain"
)

const payrollCollection = "payslips"

type MongoPayrollRepository struct {
	coll *mongo.Collection
}

func NewPayrollRepository(db *mongo.Database) *MongoPayrollRepository {
	return &MongoPayrollRepository{coll: db.Collection(payrollCollection)}
}

type mongoPayslip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CompanyID   string             `bson:"company_id"`
	EmployeeID  string             `bson:"employee_id"`
	Period      string             `bson:"period"`
	Gross       float64            `bson:"gross"`
	Deductions  float64            `bson:"deductions"`
	Net         float64            `bson:"net"`
	GeneratedAt int64              `bson:"generated_at"`
}

// Upsert replaces the payslip for (employee, period), keeping payroll runs
// replay-safe.
func (r *MongoPayrollRepository) Upsert(ctx context.Context, payslip *domain.Payslip) (*domain.Payslip, error) {
	filter := bson.M{
		"company_id":  payslip.CompanyID,
		"employee_id": payslip.EmployeeID,
		"period":      payslip.Period,
	}
	update := bson.M{"$set": bson.M{
		"gross":        payslip.Gross,
		"deductions":   payslip.Deductions,
		"net":          payslip.Net,
		"generated_at": payslip.GeneratedAt.Unix(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored mongoPayslip
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("upsert payslip: %w", err)
	}

	out := *payslip
	out.ID = stored.ID.Hex()
	return &out, nil
}

func (r *MongoPayrollRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Payslip, error) {
	return r.list(ctx, bson.M{"company_id": companyID})
}

func (r *MongoPayrollRepository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]domain.Payslip, error) {
	return r.list(ctx, bson.M{"company_id": companyID, "employee_id": employeeID})
}

func (r *MongoPayrollRepository) list(ctx context.Context, filter bson.M) ([]domain.Payslip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "period", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payslips: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Payslip
	for cur.Next(ctx) {
		var mp mongoPayslip
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payslip: %w", err)
		}
		out = append(out, domain.Payslip{
			ID:          mp.ID.Hex(),
			CompanyID:   mp.CompanyID,
			EmployeeID:  mp.EmployeeID,
			Period:      mp.Period,
			Gross:       mp.Gross,
			Deductions:  mp.Deductions,
			Net:         mp.Net,
			GeneratedAt: unixToTime(mp.GeneratedAt),
		})
	}
	return out, cur.Err()
}
