// Package zosfiles manages z/OS datasets through the z/OSMF restfiles
// endpoint.
package zosfiles

import (
	"context"
	"fmt"
	"net/url"

	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
)

// DatasetsResource is the z/OSMF dataset REST resource path.
const DatasetsResource = "/zosmf/restfiles/ds"

// Dataset describes one entry of a dataset list.
type Dataset struct {
	// Name of the dataset
	Name string `json:"dsname"`

	// Volume the dataset resides on
	Volume string `json:"vol"`

	// Organization, e.g. PS or PO
	Organization string `json:"dsorg"`

	// RecordFormat, e.g. FB
	RecordFormat string `json:"recfm"`

	// RecordLength as reported by the catalog
	RecordLength string `json:"lrecl"`
}

type datasetList struct {
	Items        []Dataset `json:"items"`
	ReturnedRows int       `json:"returnedRows"`
}

// Dsn issues dataset requests.
type Dsn struct {
	client *rest.Client
}

// NewDsn Constructor for Dsn.
func NewDsn(client *rest.Client) *Dsn {
	return &Dsn{client: client}
}

// List returns the catalogued datasets whose names start with level.
func (d *Dsn) List(ctx context.Context, level string) ([]Dataset, error) {
	if level == "" {
		return nil, zosmferrors.NewInvalid("dataset level not specified")
	}
	query := url.Values{}
	query.Set("dslevel", level)
	requestURL := d.client.URL(DatasetsResource) + "?" + query.Encode()

	var list datasetList
	if err := d.client.GetJSON(ctx, requestURL, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// Write replaces the content of a sequential dataset or member with text.
func (d *Dsn) Write(ctx context.Context, dataSetName, content string) (rest.Response, error) {
	if dataSetName == "" {
		return rest.Response{}, zosmferrors.NewInvalid("dataset name not specified")
	}
	requestURL := d.client.URL(fmt.Sprintf("%s/%s", DatasetsResource, rest.EncodeURIComponent(dataSetName)))
	return d.client.PutText(ctx, requestURL, content, nil)
}

// Delete removes a dataset from the catalog.
func (d *Dsn) Delete(ctx context.Context, dataSetName string) (rest.Response, error) {
	if dataSetName == "" {
		return rest.Response{}, zosmferrors.NewInvalid("dataset name not specified")
	}
	requestURL := d.client.URL(fmt.Sprintf("%s/%s", DatasetsResource, rest.EncodeURIComponent(dataSetName)))
	return d.client.Delete(ctx, requestURL, nil)
}

// DeleteMember removes one member of a partitioned dataset.
func (d *Dsn) DeleteMember(ctx context.Context, dataSetName, memberName string) (rest.Response, error) {
	if dataSetName == "" {
		return rest.Response{}, zosmferrors.NewInvalid("dataset name not specified")
	}
	if memberName == "" {
		return rest.Response{}, zosmferrors.NewInvalid("member name not specified")
	}
	return d.Delete(ctx, fmt.Sprintf("%s(%s)", dataSetName, memberName))
}
