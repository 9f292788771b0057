// +build windows

package path

func GetDefaultConfigDirPath() string {
	return "C:\\ProgramData\\submit-photos\\"
}

func GetDefaultDbDirPath() string {
	return "C:\\ProgramData\\submit-photos\\db"
}
