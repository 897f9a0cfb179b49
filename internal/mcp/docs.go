package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `coinwave tracks crypto airdrop projects and a small market table.

Tools:
- list_airdrops: the catalog, newest first by default. Narrow with search (case-insensitive
  substring of name or description) and the status / tier / cost filters.
- get_airdrop: one project by slug, with its display fields.
- list_market: the market table, sorted by rank, 24h change or volume.

Filters OR within a category and AND across categories. An empty category does not restrict.
A project without a cost counts as Free.

Docs:
- coinwave://docs/filters (filter and display rules)
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
		URI:         "coinwave://docs/filters",
		Name:        "docs_filters",
		Title:       "Listing filters and display rules",
		Description: "How search and the status, tier and cost filters combine, and how display fields are derived.",
		Content: `# Listing filters

## Search

A project matches when the lower-cased term is a substring of its lower-cased
` + "`name`" + ` or ` + "`description`" + `. An empty term matches everything.

## Categories

- ` + "`status`" + `: farming, claiming, testnet, mainnet, completed
- ` + "`tier`" + `: S, A, B, C
- ` + "`cost`" + `: Free, Paid (a missing cost is Free)

Values in one category are alternatives. Categories are combined with AND.
The result keeps the listing order.

## Display fields

- ` + "`raised_label`" + `: the raised amount or TBA
- ` + "`difficulty_label`" + `: Easy, Medium or Hard (Medium when unset), shown as 33, 66 or 100 percent
- ` + "`chains_preview`" + `: the first chains; ` + "`chains_overflow`" + ` counts the rest
- ` + "`updated_ago`" + `: minutes, hours or days since the last admin update
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
