package script_import_votes

import (
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"votemap.tw/backend/internal/constant"
	"votemap.tw/backend/internal/model"
	"votemap.tw/backend/internal/model/types"
)

const batchSize = 500

// expected CSV header, in order
var columns = []string{
	"geo_key",
	"electoral_district_name",
	"county_name",
	"township_name",
	"village_name",
	"candidate_name",
	"party_name",
	"votes",
	"electorate",
	"total_votes",
}

func run(ctx *cli.Context, deps CommandDeps) error {
	category := ctx.String("category")
	year := ctx.Int("year")
	if !constant.ValidCategory(category) {
		return errors.Errorf("unknown category %q", category)
	}

	reader, err := open(ctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	if ctx.Bool("replace") {
		deleted, err := deps.VoteRecordRepo.DeleteDataset(ctx.Context, category, year)
		if err != nil {
			return errors.Wrap(err, "failed to delete existing dataset rows")
		}
		log.Info().Int64("deleted", deleted).Msg("deleted existing dataset rows")
	}

	records, err := parse(reader, category, year)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Str("dataset", model.DatasetKey(category, year)).Msg("parsed vote rows")

	source := ctx.String("file")
	if source == "" {
		source = ctx.String("url")
	}

	published := 0
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		task := &types.IngestTask{
			TaskID:    ulid.Make().String(),
			Source:    source,
			Category:  category,
			Year:      year,
			Records:   records[start:end],
			CreatedAt: time.Now(),
		}
		payload, err := json.Marshal(task)
		if err != nil {
			return err
		}

		if _, err := deps.NatsJS.Publish("INGEST.VOTES", payload); err != nil {
			return errors.Wrapf(err, "failed to publish batch starting at row %d", start)
		}
		published++
	}

	log.Info().Int("batches", published).Msg("import finished")
	return nil
}

func open(ctx *cli.Context) (io.ReadCloser, error) {
	if path := ctx.String("file"); path != "" {
		return os.Open(path)
	}
	url := ctx.String("url")
	if url == "" {
		return nil, errors.New("either --file or --url is required")
	}

	var body io.ReadCloser
	err := retry.Do(func() error {
		resp, err := http.Get(url)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return errors.Errorf("unexpected status %s", resp.Status)
		}
		body = resp.Body
		return nil
	}, retry.Attempts(5), retry.Delay(time.Second))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch CSV")
	}
	return body, nil
}

func parse(reader io.Reader, category string, year int) ([]*model.VoteRecord, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = len(columns)

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}
	for i, name := range columns {
		if header[i] != name {
			return nil, errors.Errorf("unexpected CSV column %d: got %q, want %q", i, header[i], name)
		}
	}

	var records []*model.VoteRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV line %d", line)
		}

		votes, err := strconv.Atoi(row[7])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid votes at line %d", line)
		}
		electorate, err := atoiOrZero(row[8])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid electorate at line %d", line)
		}
		totalVotes, err := atoiOrZero(row[9])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid total_votes at line %d", line)
		}

		records = append(records, &model.VoteRecord{
			Category:              category,
			Year:                  year,
			GeoKey:                row[0],
			ElectoralDistrictName: row[1],
			CountyName:            row[2],
			TownshipName:          row[3],
			VillageName:           row[4],
			CandidateName:         row[5],
			PartyName:             row[6],
			Votes:                 votes,
			Electorate:            electorate,
			TotalVotes:            totalVotes,
		})
	}
	return records, nil
}

// atoiOrZero tolerates the empty string: sources omit village totals on
// administrative rows.
func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
