package iodb

import (
	"fmt"

	"github.com/enadata/consmeta/pkg/manifest"
)

// accessionQuery returns the join that walks from a project to its runs.
// The project ID is a bind parameter, its placeholder depends on the
// SQL dialect.
func accessionQuery(placeholder string) string {
	return fmt.Sprintf(`SELECT proj.project_id, samp.sample_id, ru.run_id
  FROM project proj
  JOIN study stu ON (proj.project_id = stu.project_id)
  JOIN experiment exp ON (stu.study_id = exp.study_id)
  JOIN experiment_sample expsamp ON (exp.experiment_id = expsamp.experiment_id)
  JOIN sample samp ON (expsamp.sample_id = samp.sample_id)
  JOIN run ru ON (exp.experiment_id = ru.experiment_id)
  WHERE proj.project_id = %s`, placeholder)
}

// rows is the part of database/sql and pgx result sets we need.
type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAccessions(rs rows) ([]manifest.Accession, error) {
	var res []manifest.Accession
	for rs.Next() {
		var acc manifest.Accession
		if err := rs.Scan(&acc.Study, &acc.Sample, &acc.Run); err != nil {
			return nil, ScanError(err)
		}
		res = append(res, acc)
	}
	if err := rs.Err(); err != nil {
		return nil, ScanError(err)
	}
	return res, nil
}
