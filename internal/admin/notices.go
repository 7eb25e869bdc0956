package admin

const (
	NoticeJobCreated            = "Job created successfully"
	NoticeJobUpdated            = "Job updated successfully"
	NoticeJobSaveFailed         = "Failed to save job"
	NoticeJobDeleted            = "Job deleted successfully"
	NoticeJobDeleteFailed       = "Failed to delete job"
	NoticeInquiryDeleted        = "Inquiry deleted successfully"
	NoticeInquiryDeleteFailed   = "Failed to delete inquiry"
	NoticeCandidateDeleted      = "Candidate deleted successfully"
	NoticeCandidateDeleteFailed = "Failed to delete candidate"
	NoticeStatusUpdated         = "Status updated successfully"
	NoticeStatusUpdateFailed    = "Failed to update status"

	NoticeLoadJobsFailed       = "Failed to load jobs"
	NoticeLoadInquiriesFailed  = "Failed to load job inquiries"
	NoticeLoadCandidatesFailed = "Failed to load candidates"
)
