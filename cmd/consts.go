package cmd

const (
	submitPhotosEnvPrefix	= "submit_photos"
	submitPhotos			= "submit_photos"
	start					= "start"

	defaultConfigFileName	= "submit_photos.yml"
	yaml					= "yaml"
	encryptedPrefix			= "encrypted:"
	info					= "info"
	defMaxLogFileSize		= 10
	defMaxLogFileAge		= 3
	defMaxLogFileBackups	= 3
	deLogFileAndStdOut		= false
	defAdminPassword		= "admin"

	flagConfigFile        	= "config-file"
	flagDbDir             	= "db-dir"
	flagServerPort        	= "server-port"
	flagLogLevel          	= "log-level"
	flagLogFile           	= "log-file"
	flagLogFileAndStdout  	= "log-file-and-stdout"
	flagLogFileMaxSize    	= "log-file-max-size"
	flagLogFileMaxBackups 	= "log-file-max-backups"
	flagLogFileMaxAge     	= "log-file-max-age"
	flagAdminPassword		= "admin-password"
	flagUploadMaxFilesize	= "upload-max-filesize"
	flagTlsCertFile			= "tls-cert-file"
	flagTlsKeyFile			= "tls-key-file"
)
