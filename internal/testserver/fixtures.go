package testserver

// SeedUsers returns the sample user collection.
func SeedUsers() []map[string]any {
	return []map[string]any{
		{"id": "u1", "name": "Amina Yusuf", "email": "amina@example.com", "phone": "+254700000001", "status": "Active", "createdAt": "2024-01-10T09:00:00Z"},
		{"id": "u2", "name": "Brian Otieno", "email": "brian@example.com", "status": "suspended", "createdAt": "2024-03-02T09:00:00Z"},
		{"id": "u3", "name": "Chloé Martin", "email": "chloe@example.com", "status": "inactive"},
	}
}

// SeedTaskers returns the sample tasker collection.
func SeedTaskers() []map[string]any {
	return []map[string]any{
		{"id": "t1", "name": "Daniel Kim", "email": "daniel@example.com", "skills": []any{"Plumbing", "Repairs"}, "rating": 4.8, "completedTasks": 120, "status": "active", "joinDate": "2023-11-01T00:00:00Z"},
		{"id": "t2", "name": "Esther Njeri", "email": "esther@example.com", "status": "suspended", "createdAt": "2024-02-14T00:00:00Z"},
	}
}

// SeedBookings returns the sample booking collection.
func SeedBookings() []map[string]any {
	return []map[string]any{
		{"_id": "b1", "tasker": map[string]any{"name": "Daniel Kim"}, "description": "Fix kitchen sink", "date": "2024-04-01T10:00:00Z", "earnings": 80, "status": "completed"},
		{"_id": "b2", "description": "Assemble wardrobe", "date": "2024-04-03T10:00:00Z", "status": "pending"},
		{"_id": "b3", "tasker": map[string]any{"name": "Esther Njeri"}, "description": "Deep clean", "date": "2024-04-02T10:00:00Z", "earnings": 120, "status": "in-progress"},
		{"_id": "b4", "tasker": map[string]any{"name": "Daniel Kim"}, "description": "Replace tap", "earnings": 45, "status": "Cancelled"},
	}
}

const analyticsFixture = `{
	"totalUsers": 12840,
	"totalTaskers": 532,
	"todaysBookings": 87,
	"todaysEarnings": "1234.50",
	"analytics": {
		"users": {"growth": 12.5, "today": 40, "yesterday": 35},
		"taskers": {"growth": "-3", "today": 2, "yesterday": 3},
		"bookings": {"growth": 0, "today": 87, "yesterday": 87},
		"earnings": {"growth": 4.25, "today": 1234.5, "yesterday": 1100}
	}
}`

const distributionFixture = `[
	{"name": "Cleaning", "value": 210},
	{"name": "Plumbing", "value": 95},
	{"name": "Moving", "value": 60}
]`

const earningsFixture = `[
	{"name": "Jan", "value": 18000},
	{"name": "Feb", "value": 21500},
	{"name": "Mar", "value": "19250.5"}
]`

const activitiesFixture = `[
	{"id": "a1", "activity": "New booking: Fix kitchen sink", "type": "booking", "status": "pending", "date": "2024-04-01T10:00:00Z"},
	{"id": "a2", "activity": "Tasker approved: Daniel Kim", "type": "tasker", "status": "active", "date": "2024-03-30T08:30:00Z"}
]`
