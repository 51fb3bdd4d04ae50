package setup

import (
	"fmt"
	"os"

	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/textutil"
	"github.com/urfave/cli/v2"
)

// SetupAction installs the bundled punkt training data for one language.
func SetupAction(c *cli.Context) error {
	dataPath := c.String("punkt-data")
	if dataPath == "" {
		dataPath = os.Getenv(models.EnvPunktData)
	}
	language := c.String("language")
	if language == "" {
		language = models.DefaultLanguage
	}

	path, err := textutil.InstallTrainingData(dataPath, language)
	if err != nil {
		return fmt.Errorf("failed to install training data: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Installed %s training data to %s\n", language, path)
	fmt.Fprintf(c.App.Writer, "\nTip: export %s=%s\n", models.EnvPunktData, dataPath)
	return nil
}
