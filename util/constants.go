package util

const (
	INTERNAL_SERVER_ERROR = "Internal server error"

	PLEASE_FILL_ALL_REQUIRED_FIELDS = "Please fill all required fields"
	PLEASE_FILL_ALL_THE_FIELDS      = "Please fill all the fields"
	DISPLAY_NAME_TOO_SHORT          = "Display name should be at least 5 characters"
	PASSWORD_TOO_SHORT              = "Password should be at least 5 characters"
	INVALID_EMAIL_FORMAT            = "Invalid email format"
	PASSWORDS_DO_NOT_MATCH          = "Passwords do not match"
	INVALID_PRACTICE_TYPE           = "Practice type must be one of solo, group, hospital, other"
	INVALID_GENDER                  = "Gender must be Male or Female"
	INVALID_DATE_OF_BIRTH           = "Date of birth must be formatted as YYYY-MM-DD"
	EMAIL_ALREADY_IN_USE            = "Email is already in use"
	ALREADY_LOGGED_IN               = "You are already logged in"
	INCORRECT_EMAIL_OR_PASSWORD     = "Incorrect email or password"
	INVALID_REQUEST_BODY            = "Invalid request body"

	PLEASE_LOG_IN           = "Please log in to continue"
	INVALID_OR_EXPIRED      = "Invalid or expired token"
	SESSION_EXPIRED         = "Session expired, please log in again"
	USER_NOT_FOUND          = "User not found"
	LOGOUT_SUCCESSFUL       = "Logout successful"
	FAILED_TO_LOGOUT        = "Failed to logout"
	SUCCESS                 = "Success"
	PATIENT_NAME_REQUIRED   = "Patient name is required"
	SCAN_TYPE_REQUIRED      = "Scan type is required"
	INVALID_SCAN_TYPE       = "Scan type must be CT scan or X-ray"
	SCAN_REPORT_NOT_FOUND   = "Scan report not found"
	INVALID_DATE_FILTER     = "Date filter must be formatted as YYYY-MM-DD"
	MEDICATION_NOT_FOUND    = "Medication not found"
	INVALID_DATE            = "Dates must be formatted as YYYY-MM-DD"
	INVALID_FREQUENCY_TIME  = "Frequency times must be formatted as HH:MM"
	END_DATE_BEFORE_START   = "End date cannot be before start date"
	INVALID_DOSAGE_STATUS   = "Status must be taken or missed"
	INVALID_SCHEDULE_ACTION = "Unknown schedule action"
	SLOT_ID_REQUIRED        = "Slot id is required"
	DOSE_NOT_SCHEDULED      = "Medication is not scheduled at this time today"
)

const (
	UserCollection       = "users"
	SessionCollection    = "sessions"
	ScanReportCollection = "scanReports"
	MedicationCollection = "medications"
	DosageCollection     = "dosages"

	ScanReportKey = "SCAN_REPORT:"
	SessionKey    = "SESSION:"

	AuthCookie = "AuthCookie"
)
