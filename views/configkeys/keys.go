package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigViewsPrefix = ConfigPrefix + delimiter + "views"

	ConfigViewsViewRecomputations = ConfigViewsPrefix + delimiter + "view_recomputations"

	ConfigViewsLogPrefix = ConfigViewsPrefix + delimiter + "log"
	ConfigViewsLogLevel  = ConfigViewsLogPrefix + delimiter + "level"
)
