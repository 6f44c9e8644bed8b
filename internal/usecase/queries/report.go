package queries

import (
	"context"
	"time"

	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

type ReportQueries interface {
	Dashboard(ctx context.Context, actor shared.Actor) (*DashboardView, error)
	// Calendar groups the month's appointments by slot date, in date order.
	// A zero year or month means the current one.
	Calendar(ctx context.Context, actor shared.Actor, year, month int) ([]*CalendarDay, error)
}

type ReportReadStore interface {
	DashboardStats(ctx context.Context, monthStart, monthEnd time.Time) (*DashboardView, error)
}

type reportQueriesImpl struct {
	reports      ReportReadStore
	appointments AppointmentReadStore
	clock        clock.Clock
}

func NewReportQueries(reports ReportReadStore, appointments AppointmentReadStore, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{
		reports:      reports,
		appointments: appointments,
		clock:        clk,
	}
}

func (q *reportQueriesImpl) Dashboard(ctx context.Context, actor shared.Actor) (*DashboardView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	now := q.clock.Now().UTC()
	first, last := clock.MonthRange(now.Year(), now.Month())
	stats, err := q.reports.DashboardStats(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "dashboard stats")
	}
	return stats, nil
}

func (q *reportQueriesImpl) Calendar(ctx context.Context, actor shared.Actor, year, month int) ([]*CalendarDay, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	now := q.clock.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if year < 2000 || year > 9999 || month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	first, last := clock.MonthRange(year, time.Month(month))
	views, err := q.appointments.FindBySlotDateRange(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "calendar appointments")
	}

	days := []*CalendarDay{}
	index := map[string]*CalendarDay{}
	for _, v := range views {
		if v.Slot == nil {
			continue
		}
		day, ok := index[v.Slot.Date]
		if !ok {
			day = &CalendarDay{Date: v.Slot.Date}
			index[v.Slot.Date] = day
			days = append(days, day)
		}
		day.Appointments = append(day.Appointments, v)
	}
	return days, nil
}
