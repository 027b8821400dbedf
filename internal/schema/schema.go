package schema

// DDL creates the history tables. Executed on every startup; idempotent.
const DDL = `
create table if not exists beats (
	id integer primary key autoincrement,
	ts timestamp not null
);

create index if not exists beats_ts_idx on beats (ts);

create table if not exists outages (
	id integer primary key autoincrement,
	started_ts timestamp,
	ended_ts timestamp not null
);

create index if not exists outages_ended_ts_idx on outages (ended_ts);
`
