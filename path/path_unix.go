// +build !windows

package path

func GetDefaultConfigDirPath() string {
	return "/etc/submit-photos/"
}

func GetDefaultDbDirPath() string {
	return "/var/cache/submit-photos/db"
}
