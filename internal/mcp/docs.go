package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `servidz-console administers the Servidz services marketplace: users, taskers (service providers) and bookings.

Start with login(email, password). Tools other than login return AUTH_REQUIRED until a session exists, and again whenever the backend rejects the token; sign in again then.

Browse with list_items(entity, search, status, sort). Items carry a canonical lowercase status and display fields; missing values read "N/A".
Change a user or tasker with apply_action(entity, id, action). ban and activate call the backend; delete only hides the item in this console.
A second action on the same item while one is pending fails with ACTION_IN_PROGRESS. ACTION_FAILED means nothing changed.
Bookings are read-only; use booking_counts for tallies.

get_dashboard summarizes the platform; sections that could not load are listed in warnings.

Docs:
- console://docs/index
- console://docs/collections
- console://docs/errors
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "console://docs/index",
		Name:        "docs_index",
		Title:       "servidz-console docs index",
		Description: "Entry point: which tools exist and what to read next.",
		Content: `# servidz-console

1. ` + "`login`" + ` with an admin account.
2. ` + "`get_dashboard`" + ` for totals, growth and recent activity.
3. ` + "`list_items`" + ` to find users, taskers or bookings.
4. ` + "`apply_action`" + ` to ban, activate or hide a user or tasker.
5. ` + "`recent_actions`" + ` lists what was changed from this console (when the local database is enabled).
6. ` + "`logout`" + ` when done.

More:
- ` + "`console://docs/collections`" + ` statuses, search fields, sorting.
- ` + "`console://docs/errors`" + ` error codes and what to do about them.
`,
	},
	{
		URI:         "console://docs/collections",
		Name:        "docs_collections",
		Title:       "Collections",
		Description: "Statuses, searchable fields and sort orders for each collection.",
		Content: `# Collections

| entity   | statuses                                                        | search fields       | actions              |
|----------|-----------------------------------------------------------------|---------------------|----------------------|
| users    | active, inactive, suspended                                     | name, email         | ban, activate, delete |
| taskers  | active, inactive, suspended                                     | name, email, profession | ban, activate, delete |
| bookings | pending, accepted, confirmed, completed, cancelled, in_progress | taskerName, task    | none                 |

- Status filters accept any casing; "all" or empty keeps everything. An unknown status matches nothing.
- Search is a case-insensitive substring match; blank search keeps everything.
- sort=newest or sort=oldest orders by the item's date; undated items come last. Without sort the server order is kept.
- ban sets status suspended; activate sets status active.
- delete removes the item from this console's view only; the next list reloads it from the server.
`,
	},
	{
		URI:         "console://docs/errors",
		Name:        "docs_errors",
		Title:       "Error codes",
		Description: "Error codes returned by tools and how to recover.",
		Content: `# Error codes

- AUTH_REQUIRED: no session, or the backend rejected the token. Call ` + "`login`" + `.
- NETWORK_ERROR: the backend could not be reached or answered with an error. Retry. When a collection was loaded before, ` + "`list_items`" + ` instead returns the last loaded items with ` + "`stale: true`" + ` and the error in ` + "`warning`" + `.
- ACTION_FAILED: the backend refused a ban or activate; the item keeps its previous status.
- ACTION_IN_PROGRESS: another action on the same item has not finished yet.
- ITEM_GONE: the backend accepted the action but a reload removed the item meanwhile; nothing was logged.
- VALIDATION_ERROR: bad arguments (unknown entity, action or sort; missing credentials).
- INTERNAL_ERROR: anything else.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
