// Package boxes provides the storage lookup endpoint that feeds the box
// dropdown of the rental form, plus the inventory stores it reads from.
//
// The default handler answers GET and HEAD on /storage/ajax/get-boxes/ with
//
//	{"boxes": [{"id": "12", "label": "Box #3 (2.50m³) - Free", "disabled": false}]}
//
// listing the boxes of the warehouse named by the warehouse_id query
// parameter, ordered by box number. A missing warehouse_id yields an empty
// list rather than an error. Boxes that are not free are flagged disabled so
// clients can show them without allowing selection.
package boxes
