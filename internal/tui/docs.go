package tui

// page is the usage guide shown behind the dialogs.
const page = "# Dialogs\n" +
	"\n" +
	"Open a dialog from anywhere and wait for the answer. Each dialog renders on top of the " +
	"ones already open; `esc` dismisses the top one.\n" +
	"\n" +
	"## Confirm\n" +
	"\n" +
	"```go\n" +
	"p := dialog.Confirm(svc, \"Delete file?\", \"This cannot be undone.\",\n" +
	"\tdialog.ConfirmOptions{Variant: dialog.VariantDestructive})\n" +
	"ok, answered, err := p.Await(ctx)\n" +
	"```\n" +
	"\n" +
	"## Input\n" +
	"\n" +
	"Blank answers settle as not answered.\n" +
	"\n" +
	"```go\n" +
	"name, ok, err := dialog.Input(svc, \"Rename\", \"new name\", \"default value\").Await(ctx)\n" +
	"```\n" +
	"\n" +
	"## Select\n" +
	"\n" +
	"```go\n" +
	"opts := []dialog.Option[string]{{Label: \"Option 1\", Value: \"option1\"}}\n" +
	"v, ok, err := dialog.Select(svc, \"Pick one\", opts, &opts[0].Value).Await(ctx)\n" +
	"```\n" +
	"\n" +
	"## Loading\n" +
	"\n" +
	"A timed operation that settles with its outcome.\n" +
	"\n" +
	"```go\n" +
	"succeeded, _, _ := dialog.Loading(svc, \"Processing\", \"Please wait\", 3*time.Second).Await(ctx)\n" +
	"```\n" +
	"\n" +
	"## Inside Bubble Tea\n" +
	"\n" +
	"Open dialogs from a command, never from `Update`, and turn the answer into a message:\n" +
	"\n" +
	"```go\n" +
	"return m, func() tea.Msg {\n" +
	"\tp := dialog.Confirm(svc, \"Proceed?\", \"\", dialog.ConfirmOptions{})\n" +
	"\treturn dialog.AwaitCmd(ctx, p, toToast)()\n" +
	"}\n" +
	"```\n"
