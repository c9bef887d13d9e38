package testkit

import (
	"fmt"
	"math/rand"

	"goroster/domain/employee"
)

// TestKit generates deterministic employee fixtures and the messy table
// shapes the normalizer has to survive. Same seed, same output: package
// tests, the CLI's sample command and the UI demo all rely on that.
type TestKit struct {
	rng *rand.Rand
}

// NewTestKit creates a test kit with the given seed
func NewTestKit(seed int64) *TestKit {
	return &TestKit{rng: rand.New(rand.NewSource(seed))}
}

var firstNames = []string{
	"Aisha", "Carlos", "Deepa", "Elena", "Farid", "Grace", "Hiro", "Imani",
	"Jonas", "Kavya", "Liam", "Mei", "Noah", "Olga", "Priya", "Quinn",
	"Ravi", "Sofia", "Tomas", "Uma", "Victor", "Wei", "Yara", "Zane",
}

var lastNames = []string{
	"Abbott", "Banerjee", "Chen", "Dube", "Eriksen", "Fernandez", "Gupta",
	"Hassan", "Ivanova", "Johnson", "Kim", "Lopez", "Mbeki", "Nakamura",
	"Okafor", "Park", "Quispe", "Rossi", "Singh", "Tanaka",
}

var departments = []string{"Inbound", "Outbound", "Returns", "Inventory"}

var statuses = []string{"Active", "Active", "Active", "On Leave"}

// Employees generates n deterministic employee records
func (t *TestKit) Employees(n int) []employee.Record {
	records := make([]employee.Record, n)
	for i := 0; i < n; i++ {
		records[i] = employee.Record{
			EmployeeID: fmt.Sprintf("EMP%04d", 1000+i),
			Name:       t.pick(firstNames) + " " + t.pick(lastNames),
			Department: t.pick(departments),
		}
	}
	return records
}

func (t *TestKit) pick(options []string) string {
	return options[t.rng.Intn(len(options))]
}

func (t *TestKit) userID() string {
	return fmt.Sprintf("u%06d", 100000+t.rng.Intn(900000))
}

func (t *TestKit) wins() string {
	return fmt.Sprintf("%d", t.rng.Intn(40))
}
