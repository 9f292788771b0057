package db

import "time"

const (
	dbPerms                       = 0600
	dbOpenTimeout                 = time.Minute
	DatabaseFileName              = "submit_photos.db"
	DatabaseEncryptionKeyFileName = "submit_photos.key"

	System = "system"

	// separates the parts of composite keys (course number and year, course key and user name)
	KeySeparator = ":"

	// bucket names
	Courses  = "courses"
	Graders  = "graders"
	Students = "students"
)
