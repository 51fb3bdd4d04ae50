package help

const ColdstartYAML = `# hashtags Quick Start

setup: |
  hashtags setup --punkt-data ~/punkt
  export PUNKT_DATA=~/punkt

commands:
  basic_count: |
    hashtags ./docs report.json

  without_default_stop_words: |
    hashtags -d ./docs report.json

  extra_stop_words: |
    hashtags -s stop.txt ./docs report.json

  yaml_report: |
    hashtags --format yaml ./docs report.yaml

  html_documents: |
    hashtags --include-html ./pages report.json

  record_and_summarize: |
    hashtags --record --summary summary.yaml --top 10 ./docs report.json

  list_runs: |
    hashtags runs

  run_details: |
    hashtags run 3

  word_across_runs: |
    hashtags word cat

config_file:
  example: |
    tokenizer:
      data_path: ~/punkt
      language: english
    stop_words:
      disable_defaults: false
      file: stop.txt
      extra: [foo, bar]
    sources:
      include_html: false
      detect_language: true
    output:
      format: json
      top: 10
      summary: summary.yaml
    history:
      enabled: true
      path: hashtags.db
    logging:
      level: info
  precedence: "flags > config file > PUNKT_DATA / HASHTAGS_DB > defaults"

report_shape:
  stop_words: "Sorted stop words in effect"
  results: "Word, Count, Documents, Sentences containing the word"
  order: "Count descending, then word ascending"

invariants:
  - "Only .txt files in the input directory are read (plus .html/.htm with --include-html)"
  - "Documents are processed in file name order"
  - "Words are lowercased with surrounding punctuation trimmed"
  - "A sentence is listed once per run of repeats in a row"
  - "Any unreadable document aborts the run and no report is written"

flag_order:
  - "Flags go before the positional arguments: hashtags -d ./docs report.json"
  - "hashtags ./docs report.json -d is rejected with a usage error"

error_behavior:
  - "Missing tokenizer data: fail before reading any input"
  - "Exit codes: 0=success, 1=run failed, 2=usage error"
`
