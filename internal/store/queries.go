package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/models"
)

var recordColumns = []string{
	"id",
	"relative_path",
	"version",
	"checked_out_by",
	"checked_out_by_machine_id",
	"checked_out_by_machine_name",
	"workflow_label",
	"workflow_color",
	"part_number",
	"description",
	"revision",
	"created_at",
	"deleted",
}

func buildUpsertRecordQuery(r models.SyncRecord) (string, []any, error) {
	var label, color string
	if r.Workflow != nil {
		label, color = r.Workflow.Label, r.Workflow.Color
	}

	return sq.Insert("sync_records").
		Columns(recordColumns...).
		Values(
			r.ID,
			r.RelativePath,
			r.Version,
			r.CheckedOutBy,
			r.CheckedOutByMachineID,
			r.CheckedOutByMachineName,
			label,
			color,
			r.PartNumber,
			r.Description,
			r.Revision,
			r.CreatedAt,
			r.Deleted,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			relative_path = excluded.relative_path,
			version = excluded.version,
			checked_out_by = excluded.checked_out_by,
			checked_out_by_machine_id = excluded.checked_out_by_machine_id,
			checked_out_by_machine_name = excluded.checked_out_by_machine_name,
			workflow_label = excluded.workflow_label,
			workflow_color = excluded.workflow_color,
			part_number = excluded.part_number,
			description = excluded.description,
			revision = excluded.revision,
			created_at = excluded.created_at,
			deleted = excluded.deleted`).
		ToSql()
}

func buildGetRecordByPathQuery(relativePath string) (string, []any, error) {
	return sq.Select(recordColumns...).
		From("sync_records").
		Where(sq.Eq{"relative_path": relativePath}).
		ToSql()
}

func buildGetAllRecordsQuery(includeDeleted bool) (string, []any, error) {
	builder := sq.Select(recordColumns...).
		From("sync_records").
		OrderBy("relative_path")

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	return builder.ToSql()
}

func buildDeleteRecordQuery(id string) (string, []any, error) {
	return sq.Delete("sync_records").Where(sq.Eq{"id": id}).ToSql()
}
