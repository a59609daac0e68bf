package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name GoalService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename goal_service_mock.go --with-expecter
//go:generate mockery --name TodoService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename todo_service_mock.go --with-expecter
//go:generate mockery --name CheckInService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename checkin_service_mock.go --with-expecter
//go:generate mockery --name InboxService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename inbox_service_mock.go --with-expecter
