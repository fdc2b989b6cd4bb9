/*
Package cli provides command-line interface utilities for licensegate.

The cli package includes output formatters and common CLI helpers used by
the licensegate command.

Output Formatting:

The cli package renders check results in multiple formats (text, JSON, CSV):

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

Long-running commands use SetupSignalHandler to obtain a context that is
canceled on SIGINT or SIGTERM:

	ctx := cli.SetupSignalHandler()
	watcher.Run(ctx)
*/
package cli
