package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/timeclock"
)

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_unset_attendance", 1*time.Hour, j.MarkUnsetAttendance)
}

// MarkUnsetAttendance flips records from completed business days that
// were never touched (still belum_diatur) to alpha. The current business
// day starts at the day-reset hour, so a record for "yesterday" only
// counts as completed once the clock passes 03:00.
func (j *AttendanceJobs) MarkUnsetAttendance(ctx context.Context) error {
	businessToday := time.Now().Add(-time.Duration(timeclock.DayResetHour()) * time.Hour)
	cutoff := businessToday.Format("2006-01-02")

	changed, err := j.attendanceRepo.MarkUnsetAsAbsent(ctx, cutoff)
	if err != nil {
		return err
	}

	if changed > 0 {
		slog.Info("Cron: marked unset attendance as alpha", "count", changed, "before", cutoff)
	}
	return nil
}
