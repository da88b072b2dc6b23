package constants

// Identifier halaman untuk matrix permission (closed set).
// Nama harus sama dengan yang dipakai frontend saat menyimpan UserRight.
const (
	PageUser       = "User"
	PageUserRights = "UserRights"
	PageBranch     = "Branch"
	PageCourse     = "Course"
	PageBatch      = "Batch"
	PageStudent    = "Student"
	PageAttendance = "Attendance"
	PageEmployee   = "Employee"
	PageInquiry    = "Inquiry"
	PageVisitor    = "Visitor"
	PageFeeReceipt = "FeeReceipt"
)

var AllPages = []string{
	PageUser,
	PageUserRights,
	PageBranch,
	PageCourse,
	PageBatch,
	PageStudent,
	PageAttendance,
	PageEmployee,
	PageInquiry,
	PageVisitor,
	PageFeeReceipt,
}

func IsValidPage(page string) bool {
	for _, p := range AllPages {
		if p == page {
			return true
		}
	}
	return false
}
