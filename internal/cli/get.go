package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"

	api "github.com/solarbi/savvy-planner/api/v1"
	"github.com/solarbi/savvy-planner/internal/client"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}

	kindFilters = map[string][]string{
		AssumptionKind:    {"status", "name"},
		SimulationKind:    {"status", "name", "assumption"},
		SimulationLogKind: {"name", "user", "action"},
	}
)

type GetOptions struct {
	GlobalOptions

	Output   string
	Page     int
	PageSize int
	Filters  map[string]string

	out io.Writer
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Page:          -1,
		PageSize:      -1,
		out:           os.Stdout,
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:     "get (TYPE | TYPE/ID)",
		Short:   "Display one or many resources.",
		Example: "get assumptions --filter status=Success\nget simulation/3 -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.IntVar(&o.Page, "page", o.Page, "Page to list, starting at 0")
	fs.IntVar(&o.PageSize, "page-size", o.PageSize, "Number of rows per page")
	fs.StringToStringVar(&o.Filters, "filter", o.Filters, "Column filters, e.g. status=Success,name=q1")
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	return nil
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.ContainsString(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	for key := range o.Filters {
		if !funk.ContainsString(kindFilters[kind], key) {
			return fmt.Errorf("unknown filter %q for %s: must be one of %s", key, plural(kind), strings.Join(kindFilters[kind], ", "))
		}
	}

	return nil
}

func (o *GetOptions) filter(key string) *string {
	if v, ok := o.Filters[key]; ok {
		return &v
	}
	return nil
}

func (o *GetOptions) page() *int {
	if o.Page < 0 {
		return nil
	}
	return &o.Page
}

func (o *GetOptions) pageSize() *int {
	if o.PageSize < 0 {
		return nil
	}
	return &o.PageSize
}

func (o *GetOptions) Run(ctx context.Context, args []string) error { // nolint: gocyclo
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	var response any
	switch {
	case kind == AssumptionKind && id != "":
		response, err = c.GetAssumptionWithResponse(ctx, id)
	case kind == AssumptionKind:
		response, err = c.ListAssumptionsWithResponse(ctx, &api.ListAssumptionsParams{
			Page:     o.page(),
			PageSize: o.pageSize(),
			Status:   o.filter("status"),
			Name:     o.filter("name"),
		})
	case kind == SimulationKind && id != "":
		var n int64
		if n, err = parseID(kind, id); err != nil {
			return err
		}
		response, err = c.GetSimulationWithResponse(ctx, n)
	case kind == SimulationKind:
		response, err = c.ListSimulationsWithResponse(ctx, &api.ListSimulationsParams{
			Page:       o.page(),
			PageSize:   o.pageSize(),
			Status:     o.filter("status"),
			Name:       o.filter("name"),
			Assumption: o.filter("assumption"),
		})
	case kind == SimulationLogKind && id != "":
		var n int64
		if n, err = parseID(kind, id); err != nil {
			return err
		}
		response, err = c.GetSimulationLogWithResponse(ctx, n)
	case kind == SimulationLogKind:
		response, err = c.ListSimulationLogsWithResponse(ctx, &api.ListSimulationLogsParams{
			Page:     o.page(),
			PageSize: o.pageSize(),
			Name:     o.filter("name"),
			User:     o.filter("user"),
			Action:   o.filter("action"),
		})
	default:
		return fmt.Errorf("unsupported resource kind: %s", kind)
	}
	return o.processResponse(response, err, kind, id)
}

func (o *GetOptions) processResponse(response any, err error, kind, id string) error {
	errorPrefix := fmt.Sprintf("reading %s/%s", kind, id)
	if id == "" {
		errorPrefix = fmt.Sprintf("listing %s", plural(kind))
	}

	if err != nil {
		return fmt.Errorf(errorPrefix+": %w", err)
	}

	v := reflect.ValueOf(response).Elem()
	httpResponse := v.FieldByName("HTTPResponse").Interface().(*http.Response)
	if httpResponse.StatusCode != http.StatusOK {
		return fmt.Errorf(errorPrefix+": %w", client.NewResponseError(httpResponse, v.FieldByName("Body").Bytes()))
	}

	return o.print(v.FieldByName("JSON200").Interface())
}

func (o *GetOptions) print(response any) error {
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Fprintf(o.out, "%s\n", string(marshalled))
		return nil
	default:
		return printTable(o.out, response)
	}
}

func printTable(out io.Writer, response any) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	switch r := response.(type) {
	case *api.Assumption:
		printAssumptionsTable(w, *r)
	case *api.AssumptionList:
		printAssumptionsTable(w, r.Result...)
	case *api.Simulation:
		printSimulationsTable(w, *r)
	case *api.SimulationList:
		printSimulationsTable(w, r.Result...)
	case *api.SimulationLog:
		printSimulationLogsTable(w, *r)
	case *api.SimulationLogList:
		printSimulationLogsTable(w, r.Result...)
	default:
		return fmt.Errorf("unknown resource type %T", response)
	}
	return w.Flush()
}

func printAssumptionsTable(w io.Writer, assumptions ...api.Assumption) {
	fmt.Fprintln(w, "NAME\tSTATUS\tDETAIL\tCHANGED")
	for _, a := range assumptions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Status, lo.FromPtr(a.StatusDetail), a.ChangedOn.Format("2006-01-02 15:04:05"))
	}
}

func printSimulationsTable(w io.Writer, simulations ...api.Simulation) {
	fmt.Fprintln(w, "ID\tRUN ID\tNAME\tASSUMPTION\tSTATUS")
	for _, s := range simulations {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.Id, s.RunId, s.Name, lo.FromPtr(s.Assumption), s.Status)
	}
}

func printSimulationLogsTable(w io.Writer, logs ...api.SimulationLog) {
	fmt.Fprintln(w, "ID\tUSER\tACTION\tOBJECT\tTIME\tRESULT")
	for _, l := range logs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", l.Id, l.User, l.Action, l.ActionObject, l.Dttm.Format("2006-01-02 15:04:05"), l.Result)
	}
}
