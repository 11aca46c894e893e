package employee

import (
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	mockFirstNames = []string{
		"James", "John", "Sarah", "Emma", "Michael", "Jessica", "David", "Ashley", "Daniel", "Christopher",
		"Emily", "Matthew", "Amanda", "Joshua", "Jennifer", "Andrew", "Lisa", "Robert", "Michelle", "Kevin",
	}
	mockLastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
)

// GenerateMock は初回起動時に投入する n 件のダミー社員を生成します。
// rng が nil の場合は時刻ベースの乱数を使います。生成物は常に検証を通過します。
func GenerateMock(n int, rng *rand.Rand) []Employee {
	if n <= 0 {
		return []Employee{}
	}
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>17))
	}

	list := make([]Employee, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, Employee{
			ID:               fmt.Sprintf("emp-%d", i),
			FirstName:        pick(rng, mockFirstNames),
			LastName:         pick(rng, mockLastNames),
			DateOfEmployment: randomDate(rng, 2020, 4),
			DateOfBirth:      randomDate(rng, 1980, 20),
			PhoneNumber: fmt.Sprintf("+90 %d %d %d %d",
				rng.IntN(400)+500, rng.IntN(900)+100, rng.IntN(90)+10, rng.IntN(90)+10),
			Email:      fmt.Sprintf("employee%d@company.com", i),
			Department: Departments[rng.IntN(len(Departments))],
			Position:   Positions[rng.IntN(len(Positions))],
		})
	}
	return list
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

// randomDate は fromYear から years 年の範囲で日付を返します。日は 28 日までに限定します。
func randomDate(rng *rand.Rand, fromYear, years int) string {
	d := time.Date(fromYear+rng.IntN(years), time.Month(rng.IntN(12)+1), rng.IntN(28)+1, 0, 0, 0, 0, time.UTC)
	return d.Format(DateLayout)
}
