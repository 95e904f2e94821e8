package runner

import (
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	folderutil "github.com/projectdiscovery/utils/folder"
)

const (
	banner = `
       ___       ____              
  ____/ (_)_____/ __/_________ ____ 
 / __  / / ___/\ \/ ___/ __ ` + "`" + `/ __ \
/ /_/ / / /  ___/ / /__/ /_/ / / / /
\__,_/_/_/  /____/\___/\__,_/_/ /_/
`
	Version  = `1.0.0`
	toolName = "dirScan"
)

var (
	DefaultDirScanDir    = filepath.Join(folderutil.HomeDirOrDefault("."), ".config", toolName)
	DefaultDirScanConfig = filepath.Join(DefaultDirScanDir, "config.yaml")
)

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tdirScan v%s\n\n", Version)
	gologger.Print().Msgf("Use with caution. You are responsible for your actions.\n")
	gologger.Print().Msgf("Developers assume no liability and are not responsible for any misuse or damage.\n")
}
