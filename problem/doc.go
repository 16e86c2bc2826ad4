// Package problem reads and checks transportation problem documents.
//
// A document names the origins and destinations (optional), lists their
// supply and demand, and gives the unit-cost table, one row per origin:
//
//	name: Plants to markets
//	origins: [Plant A, Plant B, Plant C]
//	destinations: [North, East, South, West]
//	supply: [250, 350, 400]
//	demand: [200, 300, 350, 150]
//	costs:
//	  - [3, 1, 7, 4]
//	  - [2, 6, 5, 9]
//	  - [8, 3, 3, 2]
//
// YAML is decoded with gopkg.in/yaml.v3. JSON documents may carry comments
// and trailing commas (JSONC); github.com/tidwall/jsonc strips them before
// encoding/json decodes the result. Unknown fields are rejected in both
// formats so that typos do not silently drop data.
//
// Validate is the collaborator-side gate in front of the vam solver: shape,
// finiteness, sign and label checks all happen here, never inside the
// allocation loop.
package problem
